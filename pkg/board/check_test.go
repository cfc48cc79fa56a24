package board_test

import (
	"testing"

	"github.com/flyinggeneral/xiangqi/pkg/board"
	"github.com/flyinggeneral/xiangqi/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlyingGeneralIsCheck(t *testing.T) {
	pos, err := fen.Decode("3k5/9/9/9/9/9/9/9/9/3K5 w - - 0 1")
	require.NoError(t, err)

	assert.True(t, board.InCheck(pos, board.Red))

	for _, mv := range board.GenerateLegal(pos) {
		captured := pos.Make(mv)
		redKing := pos.KingSquare(board.Red)
		blackKing := pos.KingSquare(board.Black)
		stillFacing := redKing.File() == blackKing.File()
		assert.False(t, stillFacing && board.InCheck(pos, board.Black),
			"move %v left the kings facing on an open file", mv)
		pos.Unmake(mv, captured)
	}
}

func TestHorseLegBlocked(t *testing.T) {
	pos, err := fen.Decode("3k5/9/9/9/9/9/9/9/3P5/3NK4 w - - 0 1")
	require.NoError(t, err)

	from := board.NewSquare(board.FileD, 9)
	blocked := board.NewSquare(board.FileC, 7)
	jumpOverLeg := board.NewMove(from, blocked, false)

	for _, mv := range board.GenerateLegal(pos) {
		assert.False(t, mv.Equals(jumpOverLeg), "horse should not be able to jump its blocked leg")
	}
}

func TestCannonRequiresScreen(t *testing.T) {
	pos, err := fen.Decode("1k7/9/9/9/9/9/9/1C7/9/4K4 w - - 0 1")
	require.NoError(t, err)

	from := board.NewSquare(board.FileB, 7)
	to := board.NewSquare(board.FileB, 0)
	illegalCapture := board.NewMove(from, to, true)

	legal := board.GenerateLegal(pos)
	for _, mv := range legal {
		assert.False(t, mv.Equals(illegalCapture), "cannon capture without a screen must be illegal")
	}

	withScreen, err := fen.Decode("1k7/9/9/9/1p7/9/9/1C7/9/4K4 w - - 0 1")
	require.NoError(t, err)
	legalWithScreen := board.GenerateLegal(withScreen)

	found := false
	for _, mv := range legalWithScreen {
		if mv.Equals(illegalCapture) {
			found = true
		}
	}
	assert.True(t, found, "cannon capture with exactly one screen must be legal")
}
