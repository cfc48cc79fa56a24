package board_test

import (
	"testing"

	"github.com/flyinggeneral/xiangqi/pkg/board"
	"github.com/flyinggeneral/xiangqi/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPositionRejectsDuplicatePlacement(t *testing.T) {
	_, err := board.NewPosition([]board.Placement{
		{Square: board.NewSquare(board.FileA, 0), Piece: board.RedKing},
		{Square: board.NewSquare(board.FileA, 0), Piece: board.BlackKing},
	}, board.Red)
	assert.Error(t, err)
}

func TestNewPositionRejectsMissingKing(t *testing.T) {
	_, err := board.NewPosition([]board.Placement{
		{Square: board.NewSquare(board.FileA, 0), Piece: board.RedKing},
	}, board.Red)
	assert.Error(t, err)
}

func TestBitboardArrayAgreement(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		pc := pos.PieceAt(sq)
		for p := board.RedKing; p <= board.BlackPawn; p++ {
			set := pos.PieceBB(p).IsSet(sq)
			if pc == p {
				assert.True(t, set, "expected %v set at %v", p, sq)
			} else {
				assert.False(t, set, "expected %v clear at %v", p, sq)
			}
		}
	}
}

func TestHashMatchesFromScratch(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	recoded, err := fen.Decode(fen.Encode(pos))
	require.NoError(t, err)
	assert.Equal(t, pos.Hash(), recoded.Hash())
}

func TestRepetitionCount(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	redOut := board.NewSquare(board.FileA, 9)
	redIn := board.NewSquare(board.FileA, 7)
	redRookOut := board.NewMove(redOut, redIn, false)
	redRookBack := board.NewMove(redIn, redOut, false)

	blackOut := board.NewSquare(board.FileA, 0)
	blackIn := board.NewSquare(board.FileA, 2)
	blackRookOut := board.NewMove(blackOut, blackIn, false)
	blackRookBack := board.NewMove(blackIn, blackOut, false)

	assert.Equal(t, 0, pos.RepetitionCount())
	for i := 0; i < 2; i++ {
		pos.Make(redRookOut)
		pos.Make(blackRookOut)
		pos.Make(redRookBack)
		pos.Make(blackRookBack)
	}
	assert.Equal(t, 2, pos.RepetitionCount())
}
