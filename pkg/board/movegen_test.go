package board_test

import (
	"testing"

	"github.com/flyinggeneral/xiangqi/pkg/board"
	"github.com/flyinggeneral/xiangqi/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialPositionLegalMoveCount(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves := board.GenerateLegal(pos)
	assert.Len(t, moves, 44)
}

func TestLegalMoveSoundness(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	turn := pos.Turn()
	for _, mv := range board.GenerateLegal(pos) {
		captured := pos.Make(mv)
		assert.False(t, board.InCheck(pos, turn), "move %v left mover's king in check", mv)
		pos.Unmake(mv, captured)
	}
}

// bruteForceLegalMoves enumerates every from/to pair on the board and keeps
// those that are a legal move by direct simulation, independent of the
// bitboard-driven generator.
func bruteForceLegalMoves(pos *board.Position) []board.Move {
	turn := pos.Turn()
	var legal []board.Move

	for from := board.ZeroSquare; from < board.NumSquares; from++ {
		mover := pos.PieceAt(from)
		if mover == board.Empty || mover.Color() != turn {
			continue
		}
		for to := board.ZeroSquare; to < board.NumSquares; to++ {
			if from == to {
				continue
			}
			target := pos.PieceAt(to)
			if target != board.Empty && target.Color() == turn {
				continue
			}
			if !isPseudoLegalDestination(pos, from, to, mover) {
				continue
			}
			mv := board.NewMove(from, to, target != board.Empty)
			captured := pos.Make(mv)
			if !board.InCheck(pos, turn) {
				legal = append(legal, mv)
			}
			pos.Unmake(mv, captured)
		}
	}
	return legal
}

// isPseudoLegalDestination re-derives move legality directly from
// piece-type geometry, deliberately not reusing the bitboard generator's
// internals.
func isPseudoLegalDestination(pos *board.Position, from, to board.Square, mover board.Piece) bool {
	fr, ff := int(from.Rank()), int(from.File())
	tr, tf := int(to.Rank()), int(to.File())
	dr, df := tr-fr, tf-ff
	absDr, absDf := abs(dr), abs(df)

	switch mover.Kind() {
	case board.KingKind:
		if !inPalace(mover.Color(), to) {
			return false
		}
		return (absDr == 1 && df == 0) || (absDf == 1 && dr == 0)
	case board.GuardKind:
		if !inPalace(mover.Color(), to) {
			return false
		}
		return absDr == 1 && absDf == 1
	case board.BishopKind:
		if !onOwnHalfTest(mover.Color(), to) {
			return false
		}
		if absDr != 2 || absDf != 2 {
			return false
		}
		eye := board.NewSquare(board.File(ff+df/2), board.Rank(fr+dr/2))
		return pos.IsEmpty(eye)
	case board.HorseKind:
		if !((absDr == 2 && absDf == 1) || (absDr == 1 && absDf == 2)) {
			return false
		}
		var leg board.Square
		if absDr == 2 {
			leg = board.NewSquare(board.File(ff), board.Rank(fr+dr/2))
		} else {
			leg = board.NewSquare(board.File(ff+df/2), board.Rank(fr))
		}
		return pos.IsEmpty(leg)
	case board.RookKind:
		return clearLine(pos, from, to) && (dr == 0 || df == 0)
	case board.CannonKind:
		if dr != 0 && df != 0 {
			return false
		}
		between := countBetween(pos, from, to)
		if pos.PieceAt(to) == board.Empty {
			return between == 0
		}
		return between == 1
	case board.PawnKind:
		return isPawnMove(mover.Color(), fr, ff, tr, tf)
	default:
		return false
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func inPalace(c board.Color, sq board.Square) bool {
	f := int(sq.File())
	r := int(sq.Rank())
	if f < 3 || f > 5 {
		return false
	}
	if c == board.Red {
		return r >= 7 && r <= 9
	}
	return r >= 0 && r <= 2
}

func onOwnHalfTest(c board.Color, sq board.Square) bool {
	r := int(sq.Rank())
	if c == board.Red {
		return r >= 5
	}
	return r <= 4
}

func clearLine(pos *board.Position, from, to board.Square) bool {
	fr, ff := int(from.Rank()), int(from.File())
	tr, tf := int(to.Rank()), int(to.File())
	if fr != tr && ff != tf {
		return false
	}
	return countBetween(pos, from, to) == 0
}

func countBetween(pos *board.Position, from, to board.Square) int {
	fr, ff := int(from.Rank()), int(from.File())
	tr, tf := int(to.Rank()), int(to.File())
	dr, df := sign(tr-fr), sign(tf-ff)
	n := 0
	r, f := fr+dr, ff+df
	for r != tr || f != tf {
		if !pos.IsEmpty(board.NewSquare(board.File(f), board.Rank(r))) {
			n++
		}
		r += dr
		f += df
	}
	return n
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func isPawnMove(c board.Color, fr, ff, tr, tf int) bool {
	df := tf - ff
	dr := tr - fr
	if df != 0 && abs(df) != 1 {
		return false
	}
	if df != 0 && dr != 0 {
		return false
	}
	if c == board.Red {
		// Internal rank decreases towards Black's side; Red advances by
		// decreasing rank.
		crossedRiver := fr <= 4
		if df == 0 {
			if crossedRiver {
				return dr == -1
			}
			return dr == -1
		}
		if !crossedRiver {
			return false
		}
		return dr == 0
	}
	crossedRiver := fr >= 5
	if df == 0 {
		return dr == 1
	}
	if !crossedRiver {
		return false
	}
	return dr == 0
}

func TestLegalMoveCompletenessInitialPosition(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	generated := board.GenerateLegal(pos)
	brute := bruteForceLegalMoves(pos)

	assert.ElementsMatch(t, toStrings(generated), toStrings(brute))
}

func toStrings(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, mv := range moves {
		out[i] = mv.String()
	}
	return out
}
