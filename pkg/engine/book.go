package engine

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"os"

	"github.com/flyinggeneral/xiangqi/pkg/board"
)

// recordSize is the byte length of one opening-book record: an 8-byte
// little-endian Zobrist hash, a 4-byte little-endian from-square and a
// 4-byte little-endian to-square.
const recordSize = 16

// Book is a loaded opening book: a multimap from position hash to the
// moves recorded for it.
type Book struct {
	moves map[board.ZobristHash][]board.Move
}

// NoBook is an empty book, substituted when no book file is configured or
// the configured file is missing -- the core proceeds without it rather
// than failing.
var NoBook = &Book{moves: map[board.ZobristHash][]board.Move{}}

// LoadBook reads a flat binary book file and builds its lookup multimap.
func LoadBook(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data)%recordSize != 0 {
		return nil, fmt.Errorf("corrupt opening book %q: length %v is not a multiple of %v", path, len(data), recordSize)
	}

	moves := map[board.ZobristHash][]board.Move{}
	for i := 0; i < len(data); i += recordSize {
		hash := board.ZobristHash(binary.LittleEndian.Uint64(data[i : i+8]))
		from := board.Square(binary.LittleEndian.Uint32(data[i+8 : i+12]))
		to := board.Square(binary.LittleEndian.Uint32(data[i+12 : i+16]))
		moves[hash] = append(moves[hash], board.NewMove(from, to, false))
	}
	return &Book{moves: moves}, nil
}

// Find returns one move recorded for hash, chosen uniformly at random, or
// the null move if the book holds nothing for that position -- the
// caller should stop consulting the book for the rest of the game once it
// sees a null result.
func (b *Book) Find(hash board.ZobristHash) board.Move {
	candidates := b.moves[hash]
	if len(candidates) == 0 {
		return board.NullMove
	}
	return candidates[rand.Intn(len(candidates))]
}
