package search

import "github.com/flyinggeneral/xiangqi/pkg/board"

// maxPly bounds the killer-move table; killers are neither recorded nor
// consulted at or beyond it, and quiescence returns the static evaluation
// once ply reaches it.
const maxPly = 128

// orderingState accumulates the move-ordering heuristics across a single
// search call: killer moves and history scores persist between
// iterative-deepening passes and between sibling nodes, but are reset at
// the start of every new Search.
type orderingState struct {
	killers [maxPly][2]board.Move
	history [board.NumPieces - 1][board.NumSquares]int32
}

func newOrderingState() *orderingState {
	return &orderingState{}
}

// recordKiller remembers mv as a killer at ply, displacing the older
// slot. Skips moves already recorded to keep the two slots distinct.
func (o *orderingState) recordKiller(ply int, mv board.Move) {
	if ply < 0 || ply >= maxPly {
		return
	}
	if o.killers[ply][0].Equals(mv) {
		return
	}
	o.killers[ply][1] = o.killers[ply][0]
	o.killers[ply][0] = mv
}

func (o *orderingState) isKiller(ply int, mv board.Move) bool {
	if ply < 0 || ply >= maxPly {
		return false
	}
	return o.killers[ply][0].Equals(mv) || o.killers[ply][1].Equals(mv)
}

// bumpHistory rewards a quiet move that caused a beta cutoff, weighted by
// the square of the remaining depth so deep cutoffs dominate shallow
// noise.
func (o *orderingState) bumpHistory(pos *board.Position, mv board.Move, depth int) {
	p := pos.PieceAt(mv.From())
	if p == board.Empty {
		return
	}
	o.history[p.Index()][mv.To()] += int32(depth * depth)
}

func (o *orderingState) historyScore(pos *board.Position, mv board.Move) int32 {
	p := pos.PieceAt(mv.From())
	if p == board.Empty {
		return 0
	}
	return o.history[p.Index()][mv.To()]
}

// Priority tiers, highest first: TT move, captures by MVV-LVA, killers,
// history-ranked quiets.
const (
	priorityTT      board.MovePriority = 1 << 32
	priorityCapture board.MovePriority = 1 << 24
	priorityKiller1 board.MovePriority = 1 << 20
	priorityKiller2 board.MovePriority = 1<<20 - 1
)

// priority builds a move ordering function for ply, preferring ttMove,
// then captures ranked by victim value times 1000 minus attacker value
// (MVV-LVA), then the two killer moves for this ply, then quiets ranked
// by history score.
func (o *orderingState) priority(pos *board.Position, ply int, ttMove board.Move) board.MovePriorityFn {
	return func(mv board.Move) board.MovePriority {
		if !ttMove.IsNull() && ttMove.Equals(mv) {
			return priorityTT
		}
		if mv.IsCapture() {
			victim := pos.PieceAt(mv.To())
			attacker := pos.PieceAt(mv.From())
			mvvLva := board.MovePriority(board.MaterialValue(victim.Kind()))*1000 - board.MovePriority(board.MaterialValue(attacker.Kind()))
			return priorityCapture + mvvLva
		}
		if ply < maxPly {
			if o.killers[ply][0].Equals(mv) {
				return priorityKiller1
			}
			if o.killers[ply][1].Equals(mv) {
				return priorityKiller2
			}
		}
		return board.MovePriority(o.historyScore(pos, mv))
	}
}
