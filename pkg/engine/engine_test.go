package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/flyinggeneral/xiangqi/pkg/board"
	"github.com/flyinggeneral/xiangqi/pkg/board/fen"
	"github.com/flyinggeneral/xiangqi/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineStartsAtInitialPosition(t *testing.T) {
	e := engine.New(1)
	assert.Equal(t, fen.Initial, e.Position())
}

func TestSetPositionAppliesMoveHistory(t *testing.T) {
	e := engine.New(1)
	moves := e.LegalMoves()
	require.NotEmpty(t, moves)

	require.NoError(t, e.SetPosition(fen.Initial, moves[:1]))
	assert.NotEqual(t, fen.Initial, e.Position())
}

func TestMakeMoveAppliesLegalMove(t *testing.T) {
	e := engine.New(1)
	moves := e.LegalMoves()
	require.NotEmpty(t, moves)

	require.NoError(t, e.MakeMove(moves[0]))
	assert.NotEqual(t, fen.Initial, e.Position())
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	e := engine.New(1)
	bogus := board.NewMove(board.NewSquare(board.FileE, 9), board.NewSquare(board.FileE, 0), false)
	assert.Error(t, e.MakeMove(bogus))
}

func TestBestMoveReturnsLegalMove(t *testing.T) {
	e := engine.New(1)
	mv := e.BestMove(context.Background(), engine.Options{DepthLimit: 1})
	assert.False(t, mv.IsNull())
}

func TestSetPositionRejectsIllegalMove(t *testing.T) {
	e := engine.New(1)

	bogus := board.NewMove(board.NewSquare(board.FileE, 9), board.NewSquare(board.FileE, 0), false)
	err := e.SetPosition(fen.Initial, []board.Move{bogus})
	assert.Error(t, err)
}

func TestSearchReturnsBookMoveWhenPresent(t *testing.T) {
	e := engine.New(1)

	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	moves := board.GenerateLegal(pos)
	require.NotEmpty(t, moves)

	path := writeBookFile(t, []struct {
		hash board.ZobristHash
		from board.Square
		to   board.Square
	}{
		{pos.Hash(), moves[0].From(), moves[0].To()},
	})
	book, err := engine.LoadBook(path)
	require.NoError(t, err)
	e.UseBook(book)

	result := e.Search(context.Background(), engine.Options{DepthLimit: 4})
	assert.True(t, result.Move.Equals(moves[0]))
	assert.Equal(t, int64(0), result.Nodes, "a book hit must not run the tree search")
}

func TestSearchWithDepthLimit(t *testing.T) {
	e := engine.New(1)
	result := e.Search(context.Background(), engine.Options{DepthLimit: 1})
	require.False(t, result.Move.IsNull())
}

func TestClearHistoryPreservesPosition(t *testing.T) {
	e := engine.New(1)
	before := e.Position()
	require.NoError(t, e.ClearHistory())
	assert.Equal(t, before, e.Position())
}

func TestOptionsDeadlineFromMoveTime(t *testing.T) {
	e := engine.New(1)
	start := time.Now()
	result := e.Search(context.Background(), engine.Options{MoveTime: 50 * time.Millisecond})
	assert.False(t, result.Move.IsNull())
	assert.WithinDuration(t, start, time.Now(), 2*time.Second)
}
