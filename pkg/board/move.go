package board

import "fmt"

// Move is a packed 16-bit value: bits 0..6 = from-square, bits 7..13 =
// to-square, bit 14 = capture flag. The captured piece identity is not
// carried by the move itself -- Make returns it and Unmake takes it back
// as a side-channel parameter.
type Move uint16

const (
	moveSquareBits = 7
	moveSquareMask = Move(1<<moveSquareBits) - 1
	moveToShift    = moveSquareBits
	moveCaptureBit = Move(1) << (2 * moveSquareBits)
)

// NullMove is the zero value, used as a sentinel when no move applies (a
// stopped search, or checkmate/stalemate at a leaf).
const NullMove Move = 0

// NewMove packs a from/to pair and capture flag into a Move.
func NewMove(from, to Square, capture bool) Move {
	m := Move(from) | Move(to)<<moveToShift
	if capture {
		m |= moveCaptureBit
	}
	return m
}

func (m Move) From() Square {
	return Square(m & moveSquareMask)
}

func (m Move) To() Square {
	return Square((m >> moveToShift) & moveSquareMask)
}

func (m Move) IsCapture() bool {
	return m&moveCaptureBit != 0
}

// IsNull reports whether m is the null-move sentinel.
func (m Move) IsNull() bool {
	return m == NullMove
}

// Equals compares moves by from/to only: the capture flag is a generation
// artifact of the board the move was produced from, not part of a move's
// identity (a move parsed from a bare move string never carries it).
func (m Move) Equals(o Move) bool {
	return m.From() == o.From() && m.To() == o.To()
}

// ParseMove parses a move in the four-character file-rank-file-rank form,
// e.g. "a0a1". It carries no capture information -- the caller resolves
// that against a live position.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) != 4 {
		return NullMove, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return NullMove, fmt.Errorf("invalid from in move %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return NullMove, fmt.Errorf("invalid to in move %q: %w", str, err)
	}
	return NewMove(from, to, false), nil
}

func (m Move) String() string {
	return fmt.Sprintf("%v%v", m.From(), m.To())
}
