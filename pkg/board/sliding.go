package board

// Sliding attacks are computed on the fly from the current occupancy along
// the precomputed rays, rather than from a magic-bitboard style lookup
// table: Xiangqi's 90-square board and the cannon's screen rule make
// per-occupancy ray-walking the simpler choice here.

// nearestBlocker returns the blocker in mask nearest to the ray's origin,
// given whether the ray direction is an increasing-index direction (North,
// East) or a decreasing-index one (South, West). ok is false if mask is empty.
func nearestBlocker(mask Bitboard, increasing bool) (Square, bool) {
	if mask.IsZero() {
		return 0, false
	}
	if increasing {
		return mask.Lsb(), true
	}
	return mask.Msb(), true
}

type ray struct {
	fn         func(Square) Bitboard
	increasing bool
}

var rookRays = [4]ray{
	{RayNorth, true},
	{RayEast, true},
	{RaySouth, false},
	{RayWest, false},
}

// RookAttacks returns every square a rook on sq could move to or capture
// on, given the occupancy occ (own and opponent pieces alike -- the
// caller masks out own-side squares).
func RookAttacks(occ Bitboard, sq Square) Bitboard {
	var attacks Bitboard
	for _, r := range rookRays {
		full := r.fn(sq)
		blockers := occ.And(full)

		b, ok := nearestBlocker(blockers, r.increasing)
		if !ok {
			attacks = attacks.Or(full)
			continue
		}
		attacks = attacks.Or(full.Xor(r.fn(b))).With(b)
	}
	return attacks
}

// CannonMoves returns the cannon's quiet-move mask (empty squares reachable
// by sliding with no screen) and capture mask (squares landing on the first
// piece beyond exactly one screen), given the occupancy occ.
func CannonMoves(occ Bitboard, sq Square) (quiet, capture Bitboard) {
	for _, r := range rookRays {
		full := r.fn(sq)
		blockers := occ.And(full)

		screen, ok := nearestBlocker(blockers, r.increasing)
		if !ok {
			quiet = quiet.Or(full)
			continue
		}

		// Squares strictly between sq and the screen are quiet moves.
		beyondScreen := r.fn(screen) // overshoot past the screen, same direction
		between := full.Xor(beyondScreen).Without(screen)
		quiet = quiet.Or(between)

		// Beyond the screen, the first piece (if any) is a capture target.
		farBlockers := blockers.Without(screen)
		if target, ok := nearestBlocker(farBlockers, r.increasing); ok {
			capture = capture.With(target)
		}
	}
	return quiet, capture
}
