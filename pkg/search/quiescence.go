package search

import (
	"github.com/flyinggeneral/xiangqi/pkg/board"
	"github.com/flyinggeneral/xiangqi/pkg/eval"
)

// quiescence runs a capture-only search: a hard depth cap, stand-pat
// against the static evaluator, then captures only, ordered by the same
// scorer as the main search.
func (s *Searcher) quiescence(pos *board.Position, alpha, beta board.Score, ply int) (board.Move, board.Score) {
	if s.nodes%nodeCheckInterval == 0 && s.deadlineExceeded != nil && s.deadlineExceeded() {
		s.stopped = true
		return board.NullMove, 0
	}
	s.nodes++

	if ply >= maxPly || ply > qsearchDepthCap {
		return board.NullMove, eval.Evaluate(pos, s.cfg)
	}

	standPat := eval.Evaluate(pos, s.cfg)
	if standPat >= beta {
		return board.NullMove, standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	turn := pos.Turn()
	captures := board.GenerateCaptures(pos, nil)
	ml := board.NewMoveList(captures, s.ordering.priority(pos, ply, board.NullMove))

	var best board.Move
	bestScore := standPat

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
		_, childScore := s.quiescence(pos, -beta, -alpha, ply+1)
		score := -childScore
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
			return best, bestScore
		}
	}

	return best, bestScore
}
