package board_test

import (
	"testing"

	"github.com/flyinggeneral/xiangqi/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveParseAndString(t *testing.T) {
	tests := []string{"a0a1", "e9e8", "i0a9", "h2e2"}
	for _, str := range tests {
		mv, err := board.ParseMove(str)
		require.NoError(t, err, str)
		assert.Equal(t, str, mv.String())
	}
}

func TestMoveCaptureFlag(t *testing.T) {
	from := board.NewSquare(board.FileA, 0)
	to := board.NewSquare(board.FileA, 1)

	quiet := board.NewMove(from, to, false)
	capture := board.NewMove(from, to, true)

	assert.False(t, quiet.IsCapture())
	assert.True(t, capture.IsCapture())
	assert.True(t, quiet.Equals(capture), "capture flag must not affect move identity")
}

func TestNullMove(t *testing.T) {
	assert.True(t, board.NullMove.IsNull())
	mv := board.NewMove(board.NewSquare(board.FileA, 0), board.NewSquare(board.FileA, 1), false)
	assert.False(t, mv.IsNull())
}

func TestParseMoveRejectsMalformed(t *testing.T) {
	tests := []string{"", "a0a", "z0a1", "a0a99"}
	for _, str := range tests {
		_, err := board.ParseMove(str)
		assert.Error(t, err, str)
	}
}
