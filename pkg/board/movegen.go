package board

// pieceTargets returns a piece instance's move mask under its piece-type
// movement rules, without regard to occupancy filtering (own-piece
// exclusion is applied by the caller).
func pieceTargets(p *Position, from Square, pc Piece) Bitboard {
	occ := p.Occupancy()
	switch pc.Kind() {
	case KingKind:
		return KingAttacks(from)
	case GuardKind:
		return GuardAttacks(from)
	case BishopKind:
		var m Bitboard
		targets := BishopTargets(from)
		for to := targets.Lsb(); to != NumSquares; {
			if !occ.IsSet(BishopEye(from, to)) {
				m = m.With(to)
			}
			targets = targets.Without(to)
			to = targets.Lsb()
		}
		return m
	case HorseKind:
		var m Bitboard
		targets := HorseTargets(from)
		for to := targets.Lsb(); to != NumSquares; {
			if !occ.IsSet(HorseLeg(from, to)) {
				m = m.With(to)
			}
			targets = targets.Without(to)
			to = targets.Lsb()
		}
		return m
	case RookKind:
		return RookAttacks(occ, from)
	case PawnKind:
		return PawnAttacks(pc.Color(), from)
	default:
		return EmptyBitboard
	}
}

// appendMoves appends one encoded move per destination bit of targets,
// tagging the capture flag according to isCapture.
func appendMoves(moves []Move, from Square, targets Bitboard, isCapture bool) []Move {
	for to := targets.Lsb(); to != NumSquares; {
		moves = append(moves, NewMove(from, to, isCapture))
		targets = targets.Without(to)
		to = targets.Lsb()
	}
	return moves
}

// GenerateCaptures appends every pseudo-legal capturing move for the side
// to move to moves and returns the extended slice.
func GenerateCaptures(p *Position, moves []Move) []Move {
	turn := p.Turn()
	opp := p.SideBB(turn.Opponent())

	for k := KingKind; k <= PawnKind; k++ {
		pc := NewPiece(turn, k)
		bb := p.PieceBB(pc)
		for from := bb.Lsb(); from != NumSquares; {
			if k == CannonKind {
				_, capture := CannonMoves(p.Occupancy(), from)
				moves = appendMoves(moves, from, capture.And(opp), true)
			} else {
				moves = appendMoves(moves, from, pieceTargets(p, from, pc).And(opp), true)
			}
			bb = bb.Without(from)
			from = bb.Lsb()
		}
	}
	return moves
}

// GenerateQuiets appends every pseudo-legal non-capturing move for the
// side to move to moves and returns the extended slice.
func GenerateQuiets(p *Position, moves []Move) []Move {
	turn := p.Turn()
	empty := p.Occupancy()
	empty = allSquares.AndNot(empty)

	for k := KingKind; k <= PawnKind; k++ {
		pc := NewPiece(turn, k)
		bb := p.PieceBB(pc)
		for from := bb.Lsb(); from != NumSquares; {
			if k == CannonKind {
				quiet, _ := CannonMoves(p.Occupancy(), from)
				moves = appendMoves(moves, from, quiet.And(empty), false)
			} else {
				moves = appendMoves(moves, from, pieceTargets(p, from, pc).And(empty), false)
			}
			bb = bb.Without(from)
			from = bb.Lsb()
		}
	}
	return moves
}

var allSquares Bitboard

func init() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		allSquares = allSquares.With(sq)
	}
}

// GenerateLegal returns every legal move available to the side to move:
// the pseudo-legal captures and quiets, filtered by making each candidate,
// checking that the mover's own king is not left in check, and unmaking.
func GenerateLegal(p *Position) []Move {
	turn := p.Turn()
	pseudo := GenerateCaptures(p, nil)
	pseudo = GenerateQuiets(p, pseudo)

	legal := make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		captured := p.Make(mv)
		if !InCheck(p, turn) {
			legal = append(legal, mv)
		}
		p.Unmake(mv, captured)
	}
	return legal
}
