package search

import (
	"github.com/flyinggeneral/xiangqi/pkg/board"
	"github.com/flyinggeneral/xiangqi/pkg/eval"
)

// MateScore is the magnitude used to encode forced mates; concrete mate
// scores are MateScore minus the ply at which the mate occurs, so shorter
// mates score higher.
const MateScore board.Score = 29000

// nodeCheckInterval is how often (in node visits) the deadline/stop flag
// is polled.
const nodeCheckInterval = 2048

// qsearchDepthCap bounds the recursion depth of the quiescence search.
const qsearchDepthCap = 8

// Searcher runs one negamax search over a single mutable position. Not
// safe for concurrent use -- the core is strictly single-threaded; a
// Searcher is built fresh, or reset, per call to Search.
type Searcher struct {
	tt       *TranspositionTable
	ordering *orderingState
	cfg      *eval.Config

	nodes   int64
	stopped bool

	deadlineExceeded func() bool
}

// NewSearcher builds a Searcher backed by tt, using cfg for leaf
// evaluation. deadlineExceeded is polled every nodeCheckInterval nodes and
// at no other time; pass a closure over a wall-clock deadline or an
// externally-set stop flag (or both combined).
func NewSearcher(tt *TranspositionTable, cfg *eval.Config, deadlineExceeded func() bool) *Searcher {
	return &Searcher{
		tt:               tt,
		ordering:         newOrderingState(),
		cfg:              cfg,
		deadlineExceeded: deadlineExceeded,
	}
}

// Nodes returns the number of nodes visited by the most recent search.
func (s *Searcher) Nodes() int64 { return s.nodes }

// Stopped reports whether the most recent search call was cut short by
// the deadline/stop check.
func (s *Searcher) Stopped() bool { return s.stopped }

// resetNodeCount zeroes the node counter and stop flag for a fresh
// iterative-deepening pass; killer/history tables are NOT reset, so later
// iterations benefit from earlier ones' move-ordering data.
func (s *Searcher) resetNodeCount() {
	s.nodes = 0
	s.stopped = false
}

func hasMajorPiece(pos *board.Position, c board.Color) bool {
	n := pos.PieceBB(board.NewPiece(c, board.RookKind)).PopCount() +
		pos.PieceBB(board.NewPiece(c, board.HorseKind)).PopCount() +
		pos.PieceBB(board.NewPiece(c, board.CannonKind)).PopCount()
	return n > 1
}

// Negamax runs a fixed-order alpha-beta negamax search. pos is mutated in
// place and restored before returning.
func (s *Searcher) Negamax(pos *board.Position, depth int, alpha, beta board.Score, ply int) (board.Move, board.Score) {
	// 1. Deadline/stop check, every nodeCheckInterval node visits.
	if s.nodes%nodeCheckInterval == 0 && s.deadlineExceeded != nil && s.deadlineExceeded() {
		s.stopped = true
		return board.NullMove, 0
	}
	// 2. Node counter.
	s.nodes++

	// 3. Repetition.
	if ply > 0 && pos.RepetitionCount() >= 2 {
		return board.NullMove, 0
	}

	// 4. TT probe.
	ttMove := board.NullMove
	if entry, ok := s.tt.Probe(pos.Hash()); ok && entry.Depth >= depth {
		switch entry.Bound {
		case Exact:
			return entry.Move, entry.Score
		case LowerBound:
			if entry.Score > alpha {
				alpha = entry.Score
			}
		case UpperBound:
			if entry.Score < beta {
				beta = entry.Score
			}
		}
		if alpha >= beta {
			return entry.Move, entry.Score
		}
		ttMove = entry.Move
	}

	// 5. Quiescence delegate.
	if depth <= 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}

	// 6. Check extension.
	turn := pos.Turn()
	inCheck := board.InCheck(pos, turn)
	if inCheck {
		depth++
	}

	// 7. Null-move pruning.
	if !inCheck && depth >= 3 && hasMajorPiece(pos, turn) {
		r := 2
		if depth > 6 {
			r = 3
		}
		pos.MakeNull()
		_, nullScore := s.Negamax(pos, depth-1-r, -beta, -beta+1, ply+1)
		nullScore = -nullScore
		pos.UnmakeNull()
		if s.stopped {
			return board.NullMove, 0
		}
		if nullScore >= beta {
			return board.NullMove, beta
		}
	}

	// 8. Generate and order moves.
	moves := board.GenerateCaptures(pos, nil)
	moves = board.GenerateQuiets(pos, moves)
	ml := board.NewMoveList(moves, s.ordering.priority(pos, ply, ttMove))

	origAlpha := alpha
	var best board.Move
	bestScore := -MateScore - 1
	legalCount := 0
	moveNumber := 0

	// 9. Search each move.
	for {
		mv, ok := ml.Next()
		if !ok {
			break
		}

		captured := pos.Make(mv)
		if board.InCheck(pos, turn) {
			pos.Unmake(mv, captured)
			continue
		}
		legalCount++
		moveNumber++

		var score board.Score
		if legalCount == 1 {
			_, childScore := s.Negamax(pos, depth-1, -beta, -alpha, ply+1)
			score = -childScore
		} else {
			reduce := depth >= 3 && moveNumber > 3 && !inCheck && !mv.IsCapture()
			searchDepth := depth - 1
			if reduce {
				searchDepth--
			}
			_, childScore := s.Negamax(pos, searchDepth, -alpha-1, -alpha, ply+1)
			score = -childScore
			if score > alpha && reduce {
				_, reChildScore := s.Negamax(pos, depth-1, -beta, -alpha, ply+1)
				score = -reChildScore
			}
		}

		pos.Unmake(mv, captured)
		if s.stopped {
			return board.NullMove, 0
		}

		if score > bestScore {
			bestScore = score
			best = mv
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !mv.IsCapture() {
				s.ordering.recordKiller(ply, mv)
				s.ordering.bumpHistory(pos, mv, depth)
			}
			s.tt.Store(pos.Hash(), depth, bestScore, LowerBound, best)
			return best, bestScore
		}
	}

	// 10. No legal move: mate or stalemate.
	if legalCount == 0 {
		if inCheck {
			return board.NullMove, -MateScore + board.Score(ply)
		}
		return board.NullMove, 0
	}

	// 11. TT store.
	bound := UpperBound
	if bestScore > origAlpha {
		bound = Exact
	}
	s.tt.Store(pos.Hash(), depth, bestScore, bound, best)
	return best, bestScore
}
