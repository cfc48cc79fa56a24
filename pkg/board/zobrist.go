package board

import "math/rand"

// ZobristHash is a position hash summarising piece placement and side to
// move. Used for transposition-table addressing and repetition detection.
//
// See also: https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
type ZobristHash uint64

// ZobristTable is a pseudo-randomized table for computing a position hash.
// Built once and read-only thereafter; safe to share across goroutines
// once construction (package init) has completed.
type ZobristTable struct {
	pieces [NumPieces - 1][NumRanks][NumFiles]ZobristHash // indexed by Piece.ZobristIndex()
	side   ZobristHash
}

// defaultZobristSeed is fixed so every run of the engine produces identical
// hashes, as required for reproducible tests: the table is effectively a
// compile-time constant even though it is generated by a seeded PRNG rather
// than spelled out literally. See DESIGN.md.
const defaultZobristSeed int64 = 0x5869616e676169

// NewZobristTable builds a new table from the given seed. Exposed for tests
// that want an independent table; production code uses Zobrist.
func NewZobristTable(seed int64) *ZobristTable {
	ret := &ZobristTable{}

	r := rand.New(rand.NewSource(seed))
	for p := 0; p < NumPieces-1; p++ {
		for rk := ZeroRank; rk < NumRanks; rk++ {
			for f := ZeroFile; f < NumFiles; f++ {
				ret.pieces[p][rk][f] = ZobristHash(r.Uint64())
			}
		}
	}
	ret.side = ZobristHash(r.Uint64())

	return ret
}

// Zobrist is the process-wide table used by the engine. Deterministic
// across runs (see defaultZobristSeed).
var Zobrist = NewZobristTable(defaultZobristSeed)

// PieceKey returns the key to XOR in/out when a piece occupies a square.
func (z *ZobristTable) PieceKey(p Piece, sq Square) ZobristHash {
	return z.pieces[p.ZobristIndex()][sq.Rank()][sq.File()]
}

// SideKey returns the key XORed in exactly when it is Black's turn to move.
func (z *ZobristTable) SideKey() ZobristHash {
	return z.side
}
