package search

import (
	"context"
	"time"

	"github.com/flyinggeneral/xiangqi/pkg/board"
	"github.com/flyinggeneral/xiangqi/pkg/eval"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

// Result is the outcome of one root-level Search call.
type Result struct {
	Move  board.Move
	Score board.Score
	Depth int
	Nodes int64
	Time  time.Duration
}

// Engine runs iterative-deepening searches against a single position,
// owning the transposition table and the cooperative stop flag that
// persists across calls.
type Engine struct {
	tt   *TranspositionTable
	cfg  *eval.Config
	stop atomic.Bool
}

// NewEngine builds an Engine with a transposition table sized at
// megabytes and the given evaluator configuration.
func NewEngine(megabytes int, cfg *eval.Config) *Engine {
	return &Engine{
		tt:  NewTranspositionTable(megabytes),
		cfg: cfg,
	}
}

// Stop requests that any in-flight Search return at its next cooperative
// checkpoint.
func (e *Engine) Stop() { e.stop.Store(true) }

// ClearTT resets the transposition table.
func (e *Engine) ClearTT() { e.tt.Clear() }

// Search runs iterative deepening from depth 1 up to maxDepth (or
// unbounded if maxDepth <= 0), stopping early on a mate-within-horizon
// score or when deadline is reached, and returns the deepest
// fully-completed iteration's result.
func (e *Engine) Search(ctx context.Context, pos *board.Position, maxDepth int, deadline time.Time) Result {
	e.stop.Store(false)

	deadlineExceeded := func() bool {
		return e.stop.Load() || (!deadline.IsZero() && time.Now().After(deadline))
	}
	searcher := NewSearcher(e.tt, e.cfg, deadlineExceeded)

	var best Result
	for depth := 1; maxDepth <= 0 || depth <= maxDepth; depth++ {
		searcher.resetNodeCount()
		start := time.Now()

		mv, score := searcher.Negamax(pos, depth, -MateScore, MateScore, 0)
		elapsed := time.Since(start)

		if searcher.Stopped() {
			logw.Debugf(ctx, "Search stopped mid-iteration at depth=%v, keeping depth=%v result", depth, best.Depth)
			break
		}

		best = Result{
			Move:  mv,
			Score: score,
			Depth: depth,
			Nodes: searcher.Nodes(),
			Time:  elapsed,
		}
		logw.Debugf(ctx, "Searched %v: depth=%v score=%v nodes=%v time=%v move=%v", pos, depth, score, best.Nodes, elapsed, mv)

		if score >= MateScore-100 || score <= -MateScore+100 {
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
	}
	return best
}
