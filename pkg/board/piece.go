package board

// Kind represents a piece type ignoring color: King, Guard, Bishop, Horse,
// Rook, Cannon or Pawn. 3 bits, absolute value 1..7.
type Kind uint8

const (
	KingKind Kind = iota + 1
	GuardKind
	BishopKind
	HorseKind
	RookKind
	CannonKind
	PawnKind
)

const (
	ZeroKind Kind = 1
	NumKinds Kind = 7
)

func (k Kind) IsValid() bool {
	return k >= KingKind && k <= PawnKind
}

func (k Kind) String() string {
	switch k {
	case KingKind:
		return "K"
	case GuardKind:
		return "A"
	case BishopKind:
		return "B"
	case HorseKind:
		return "N"
	case RookKind:
		return "R"
	case CannonKind:
		return "C"
	case PawnKind:
		return "P"
	default:
		return "?"
	}
}

// Piece represents a square's content: Empty, plus the 7 kinds crossed with
// the 2 colors, in the fixed order King, Guard, Bishop, Horse, Rook, Cannon,
// Pawn. 4 bits. Red pieces occupy indices 1..7, Black 8..14.
type Piece uint8

const (
	Empty Piece = iota

	RedKing
	RedGuard
	RedBishop
	RedHorse
	RedRook
	RedCannon
	RedPawn

	BlackKing
	BlackGuard
	BlackBishop
	BlackHorse
	BlackRook
	BlackCannon
	BlackPawn
)

const NumPieces = 15

// NewPiece builds a Piece from a color and kind.
func NewPiece(c Color, k Kind) Piece {
	if c == Red {
		return Piece(k)
	}
	return Piece(k) + BlackKing - 1
}

// IsValid returns true iff the piece is a concrete (non-empty) piece.
func (p Piece) IsValid() bool {
	return p >= RedKing && p <= BlackPawn
}

// Color returns the owning side. Undefined for Empty.
func (p Piece) Color() Color {
	if p <= RedPawn {
		return Red
	}
	return Black
}

// Kind returns the piece's type, ignoring color. Undefined for Empty.
func (p Piece) Kind() Kind {
	if p <= RedPawn {
		return Kind(p)
	}
	return Kind(p - BlackKing + 1)
}

// Index returns the piece-type-index in 0..13 used to address the 14
// per-piece-type bitboards: Red pieces first (0..6), Black next (7..13),
// in King/Guard/Bishop/Horse/Rook/Cannon/Pawn order. Undefined for Empty.
func (p Piece) Index() int {
	return int(p) - 1
}

// ZobristIndex returns the index into the Zobrist piece table. It is the
// identity permutation of Index: no functional requirement distinguishes
// the two, so they coincide (see DESIGN.md).
func (p Piece) ZobristIndex() int {
	return p.Index()
}

func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'K':
		return RedKing, true
	case 'A':
		return RedGuard, true
	case 'B':
		return RedBishop, true
	case 'N':
		return RedHorse, true
	case 'R':
		return RedRook, true
	case 'C':
		return RedCannon, true
	case 'P':
		return RedPawn, true
	case 'k':
		return BlackKing, true
	case 'a':
		return BlackGuard, true
	case 'b':
		return BlackBishop, true
	case 'n':
		return BlackHorse, true
	case 'r':
		return BlackRook, true
	case 'c':
		return BlackCannon, true
	case 'p':
		return BlackPawn, true
	default:
		return Empty, false
	}
}

func (p Piece) String() string {
	if p == Empty {
		return "-"
	}
	if p.Color() == Red {
		return p.Kind().String()
	}
	switch p.Kind() {
	case KingKind:
		return "k"
	case GuardKind:
		return "a"
	case BishopKind:
		return "b"
	case HorseKind:
		return "n"
	case RookKind:
		return "r"
	case CannonKind:
		return "c"
	case PawnKind:
		return "p"
	default:
		return "?"
	}
}
