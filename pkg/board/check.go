package board

// IsSquareAttackedBy returns true iff some piece owned by attacker could
// capture a piece sitting on sq, checking each piece type in turn. It does
// not consider the flying-general rule; see InCheck.
func IsSquareAttackedBy(p *Position, sq Square, attacker Color) bool {
	occ := p.Occupancy()

	if pawns := p.PieceBB(NewPiece(attacker, PawnKind)); !pawns.IsZero() {
		// Pawn attacks are not symmetric (sideways captures depend on which
		// side of the river the pawn stands), so each pawn is checked from
		// its own square.
		for from := pawns.Lsb(); from != NumSquares; {
			if PawnAttacks(attacker, from).IsSet(sq) {
				return true
			}
			pawns = pawns.Without(from)
			from = pawns.Lsb()
		}
	}
	if kings := p.PieceBB(NewPiece(attacker, KingKind)); !kings.IsZero() {
		if KingAttacks(sq).And(kings).PopCount() > 0 {
			return true
		}
	}
	if guards := p.PieceBB(NewPiece(attacker, GuardKind)); !guards.IsZero() {
		if GuardAttacks(sq).And(guards).PopCount() > 0 {
			return true
		}
	}
	if horses := p.PieceBB(NewPiece(attacker, HorseKind)).And(HorseTargets(sq)); !horses.IsZero() {
		for from := horses.Lsb(); from != NumSquares; {
			if !occ.IsSet(HorseLeg(from, sq)) {
				return true
			}
			horses = horses.Without(from)
			from = horses.Lsb()
		}
	}
	if onOwnHalf(attacker, sq) {
		if bishops := p.PieceBB(NewPiece(attacker, BishopKind)).And(BishopTargets(sq)); !bishops.IsZero() {
			for from := bishops.Lsb(); from != NumSquares; {
				if !occ.IsSet(BishopEye(from, sq)) {
					return true
				}
				bishops = bishops.Without(from)
				from = bishops.Lsb()
			}
		}
	}
	if rooks := p.PieceBB(NewPiece(attacker, RookKind)); !rooks.IsZero() {
		if RookAttacks(occ, sq).And(rooks).PopCount() > 0 {
			return true
		}
	}
	if cannons := p.PieceBB(NewPiece(attacker, CannonKind)); !cannons.IsZero() {
		_, capture := CannonMoves(occ, sq)
		if capture.And(cannons).PopCount() > 0 {
			return true
		}
	}
	return false
}

// onOwnHalf reports whether sq is on attacker's own half of the river --
// the only half from which attacker's bishops can ever reach sq.
func onOwnHalf(attacker Color, sq Square) bool {
	if attacker == Red {
		return RedHalf().IsSet(sq)
	}
	return BlackHalf().IsSet(sq)
}

// InCheck returns true iff c's king is in check: its square is attacked by
// the opponent, or the flying-general rule applies -- the two kings share
// a file with no piece strictly between them, which counts as check.
func InCheck(p *Position, c Color) bool {
	king := p.KingSquare(c)
	if IsSquareAttackedBy(p, king, c.Opponent()) {
		return true
	}
	return flyingGeneral(p, king, p.KingSquare(c.Opponent()))
}

// flyingGeneral reports whether the two kings share a file with no piece
// strictly between them.
func flyingGeneral(p *Position, a, b Square) bool {
	if a.File() != b.File() {
		return false
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	between := RayNorth(lo).And(RaySouth(hi))
	return between.And(p.Occupancy()).IsZero()
}
