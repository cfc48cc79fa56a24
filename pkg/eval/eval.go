package eval

import "github.com/flyinggeneral/xiangqi/pkg/board"

// Evaluate returns a static position score from the side-to-move's
// perspective: the incrementally-maintained material and tapered
// piece-square accumulators, plus mobility, pattern, king-safety and
// palace-attack terms recomputed on every call, negated for Black to
// move.
func Evaluate(pos *board.Position, cfg *Config) board.Score {
	phase := phaseWeight(pos)
	pst := board.Score(float64(pos.MidgamePST())*phase + float64(pos.EndgamePST())*(1-phase))

	score := pos.Material() + pst
	score += mobilityScore(pos, cfg)
	score += patternScore(pos, cfg)
	score += kingSafetyScore(pos, cfg)
	score += palaceAttackScore(pos, cfg)

	if pos.Turn() == board.Black {
		return -score
	}
	return score
}

// phaseWeight is the fraction of non-king, non-pawn material still on the
// board relative to the starting position, clamped to [0,1].
func phaseWeight(pos *board.Position) float64 {
	var p board.Score
	for _, k := range []board.Kind{board.GuardKind, board.BishopKind, board.HorseKind, board.RookKind, board.CannonKind} {
		p += board.Score(pos.PieceBB(board.NewPiece(board.Red, k)).PopCount()) * board.MaterialValue(k)
		p += board.Score(pos.PieceBB(board.NewPiece(board.Black, k)).PopCount()) * board.MaterialValue(k)
	}
	w := float64(p) / float64(board.OpeningPhaseMaterial())
	if w > 1 {
		w = 1
	}
	return w
}

func mobilityScore(pos *board.Position, cfg *Config) board.Score {
	var score board.Score
	occ := pos.Occupancy()

	for _, c := range []board.Color{board.Red, board.Black} {
		sign := board.Score(1)
		if c == board.Black {
			sign = -1
		}
		own := pos.SideBB(c)

		rooks := pos.PieceBB(board.NewPiece(c, board.RookKind))
		for sq := rooks.Lsb(); sq != board.NumSquares; {
			n := board.RookAttacks(occ, sq).AndNot(own).PopCount()
			score += sign * cfg.MobilityRook * board.Score(n)
			rooks = rooks.Without(sq)
			sq = rooks.Lsb()
		}

		cannons := pos.PieceBB(board.NewPiece(c, board.CannonKind))
		for sq := cannons.Lsb(); sq != board.NumSquares; {
			quiet, capture := board.CannonMoves(occ, sq)
			n := quiet.PopCount() + capture.AndNot(own).PopCount()
			score += sign * cfg.MobilityCannon * board.Score(n)
			cannons = cannons.Without(sq)
			sq = cannons.Lsb()
		}

		horses := pos.PieceBB(board.NewPiece(c, board.HorseKind))
		for sq := horses.Lsb(); sq != board.NumSquares; {
			targets := board.HorseTargets(sq).AndNot(own)
			n := 0
			for to := targets.Lsb(); to != board.NumSquares; {
				if !occ.IsSet(board.HorseLeg(sq, to)) {
					n++
				}
				targets = targets.Without(to)
				to = targets.Lsb()
			}
			score += sign * cfg.MobilityHorse * board.Score(n)
			horses = horses.Without(sq)
			sq = horses.Lsb()
		}
	}
	return score
}

func patternScore(pos *board.Position, cfg *Config) board.Score {
	var score board.Score

	if pos.PieceBB(board.NewPiece(board.Red, board.CannonKind)).And(board.RankMask(0)).PopCount() > 0 {
		score += cfg.BonusBottomCannon
	}
	if pos.PieceBB(board.NewPiece(board.Black, board.CannonKind)).And(board.RankMask(board.NumRanks - 1)).PopCount() > 0 {
		score -= cfg.BonusBottomCannon
	}

	if pos.PieceBB(board.NewPiece(board.Red, board.HorseKind)).IsSet(palaceHeart(board.Black)) {
		score += cfg.BonusPalaceHeartHorse
	}
	if pos.PieceBB(board.NewPiece(board.Black, board.HorseKind)).IsSet(palaceHeart(board.Red)) {
		score -= cfg.BonusPalaceHeartHorse
	}

	return score
}

// palaceHeart returns the center square of c's own palace (file e, one
// rank in front of c's back rank): the infiltration target for the
// opponent's horses.
func palaceHeart(c board.Color) board.Square {
	if c == board.Red {
		return board.NewSquare(board.FileE, board.NumRanks-2)
	}
	return board.NewSquare(board.FileE, 1)
}

func kingSafetyScore(pos *board.Position, cfg *Config) board.Score {
	var score board.Score

	redGuards := pos.PieceBB(board.NewPiece(board.Red, board.GuardKind)).PopCount()
	if redGuards < 2 {
		score -= board.Score(2-redGuards) * cfg.KingSafetyPenaltyPerGuard
	}
	blackGuards := pos.PieceBB(board.NewPiece(board.Black, board.GuardKind)).PopCount()
	if blackGuards < 2 {
		score += board.Score(2-blackGuards) * cfg.KingSafetyPenaltyPerGuard
	}

	return score
}

func palaceAttackScore(pos *board.Position, cfg *Config) board.Score {
	var score board.Score

	blackDefenders := pos.PieceBB(board.NewPiece(board.Black, board.GuardKind)).PopCount()
	if missing := 2 - blackDefenders; missing > 0 {
		attackers := 0
		for f := board.File(3); f <= 5; f++ {
			for r := board.Rank(0); r <= 2; r++ {
				if board.IsSquareAttackedBy(pos, board.NewSquare(f, r), board.Red) {
					attackers++
				}
			}
		}
		score += board.Score(attackers*missing) * cfg.DynamicBonusAttackPerMissingDefender
	}

	redDefenders := pos.PieceBB(board.NewPiece(board.Red, board.GuardKind)).PopCount()
	if missing := 2 - redDefenders; missing > 0 {
		attackers := 0
		for f := board.File(3); f <= 5; f++ {
			for r := board.Rank(7); r <= 9; r++ {
				if board.IsSquareAttackedBy(pos, board.NewSquare(f, r), board.Black) {
					attackers++
				}
			}
		}
		score -= board.Score(attackers*missing) * cfg.DynamicBonusAttackPerMissingDefender
	}

	return score
}
