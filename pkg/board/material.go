package board

// MaterialValue returns a piece kind's material weight in centi-pawns.
// King is a sentinel value: it is never actually captured, since
// the game ends at checkmate, but search and quiescence still need a
// value for MVV-LVA ordering of any hypothetical king capture they
// evaluate before the legality filter runs.
func MaterialValue(k Kind) Score {
	switch k {
	case KingKind:
		return 10000
	case GuardKind, BishopKind:
		return 200
	case HorseKind:
		return 450
	case RookKind:
		return 900
	case CannonKind:
		return 500
	case PawnKind:
		return 100
	default:
		return 0
	}
}

// pieceSign is +1 for Red, -1 for Black: the accumulators are Red-relative.
func pieceSign(p Piece) Score {
	if p.Color() == Red {
		return 1
	}
	return -1
}

// OpeningPhaseMaterial is the combined material value of every non-king,
// non-pawn piece in the starting position, for both sides -- the
// denominator used to taper evaluation between midgame and endgame. Each
// side starts with 2 of each kind here, so the per-kind sum counts 4 times.
func OpeningPhaseMaterial() Score {
	return 4 * (MaterialValue(GuardKind) + MaterialValue(BishopKind) + MaterialValue(HorseKind) + MaterialValue(RookKind) + MaterialValue(CannonKind))
}
