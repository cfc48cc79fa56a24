package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/flyinggeneral/xiangqi/pkg/board"
	"github.com/flyinggeneral/xiangqi/pkg/board/fen"
	"github.com/flyinggeneral/xiangqi/pkg/eval"
	"github.com/flyinggeneral/xiangqi/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options configures one Search invocation. A positive depth cap always
// bounds the search; independently, a fixed movetime or, failing that,
// the side-clock fields are converted into a wall-clock deadline.
type Options struct {
	DepthLimit int

	MoveTime time.Duration

	TimeLeft  time.Duration
	Increment time.Duration
	MovesToGo int
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, movetime=%v, clock=%v+%v/%v}", o.DepthLimit, o.MoveTime, o.TimeLeft, o.Increment, o.MovesToGo)
}

// deadline resolves Options to a wall-clock deadline, the zero Time if
// the search is unbounded by time (a pure depth cap).
func (o Options) deadline(now time.Time) time.Time {
	if o.MoveTime > 0 {
		return now.Add(o.MoveTime)
	}
	if o.TimeLeft > 0 {
		movesToGo := o.MovesToGo
		if movesToGo <= 0 {
			movesToGo = 30
		}
		share := o.TimeLeft/time.Duration(movesToGo) + o.Increment
		return now.Add(share)
	}
	return time.Time{}
}

// Engine is the collaborator-facing façade: one mutable position plus the
// transposition table and opening book it searches with. Not safe for
// concurrent use beyond the cooperative Stop() call, matching the
// single-threaded core it wraps.
type Engine struct {
	cfg  *eval.Config
	book *Book
	core *search.Engine

	pos *board.Position
}

// New builds an Engine with a transposition table sized at hashMB,
// starting from the standard opening position.
func New(hashMB int) *Engine {
	cfg := eval.DefaultConfig()
	e := &Engine{
		cfg:  cfg,
		book: NoBook,
		core: search.NewEngine(hashMB, cfg),
	}
	_ = e.SetPosition(fen.Initial, nil)
	return e
}

// Name identifies the engine and its version.
func (e *Engine) Name() string { return fmt.Sprintf("xiangqi-engine %v", version) }

// UseBook installs book as the opening book consulted by Search.
func (e *Engine) UseBook(book *Book) { e.book = book }

// SetPosition sets the position from a layout string plus a list of moves
// played from it; every move must be legal in sequence or the position is
// left unchanged and an error returned -- the core never half-constructs
// a board.
func (e *Engine) SetPosition(layout string, moves []board.Move) error {
	pos, err := fen.Decode(layout)
	if err != nil {
		return err
	}
	for _, mv := range moves {
		legal := false
		for _, candidate := range board.GenerateLegal(pos) {
			if candidate.Equals(mv) {
				pos.Make(candidate)
				legal = true
				break
			}
		}
		if !legal {
			return fmt.Errorf("illegal move in position history: %v", mv)
		}
	}
	e.pos = pos
	return nil
}

// Position renders the current position as a layout string.
func (e *Engine) Position() string { return fen.Encode(e.pos) }

// MakeMove applies one legal move to the current position, in place.
func (e *Engine) MakeMove(mv board.Move) error {
	for _, candidate := range board.GenerateLegal(e.pos) {
		if candidate.Equals(mv) {
			e.pos.Make(candidate)
			return nil
		}
	}
	return fmt.Errorf("illegal move: %v", mv)
}

// LegalMoves returns every legal move available to the side to move.
func (e *Engine) LegalMoves() []board.Move { return board.GenerateLegal(e.pos) }

// Result classifies the current position: Undecided if the game is still
// in progress, otherwise the terminal outcome (checkmate, stalemate or
// three-fold repetition).
func (e *Engine) Result() board.Result { return board.GameResult(e.pos) }

// Search runs a search under opt's budget. The book is consulted first; a
// book hit is an immediate result with no tree search.
func (e *Engine) Search(ctx context.Context, opt Options) search.Result {
	if mv := e.book.Find(e.pos.Hash()); !mv.IsNull() {
		logw.Infof(ctx, "Book move for %v: %v", e.pos, mv)
		return search.Result{Move: mv}
	}

	deadline := opt.deadline(time.Now())
	result := e.core.Search(ctx, e.pos, opt.DepthLimit, deadline)
	logw.Infof(ctx, "Searched %v, opt=%v: move=%v score=%v depth=%v nodes=%v", e.pos, opt, result.Move, result.Score, result.Depth, result.Nodes)
	return result
}

// Stop requests that an in-flight Search return at its next cooperative
// checkpoint.
func (e *Engine) Stop() { e.core.Stop() }

// BestMove runs Search under opt's budget and returns only the chosen
// move, for collaborators that don't need the score/depth/node detail.
func (e *Engine) BestMove(ctx context.Context, opt Options) board.Move {
	return e.Search(ctx, opt).Move
}

// ClearTT resets the transposition table.
func (e *Engine) ClearTT() { e.core.ClearTT() }

// ClearHistory discards repetition history by rebuilding the current
// position from its layout string; the board contents are unchanged.
func (e *Engine) ClearHistory() error {
	return e.SetPosition(fen.Encode(e.pos), nil)
}
