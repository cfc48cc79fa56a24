// Package eval contains static position evaluation: the tapered
// material/piece-square score plus mobility, pattern and king-safety
// terms, tuned by a single Config record rather than scattered call-site
// constants.
package eval

import "github.com/flyinggeneral/xiangqi/pkg/board"

// Config holds the evaluator's tunable weights. Passed by reference into
// Evaluate so every call site shares one source of truth; none of these
// are hard-coded at the point of use.
type Config struct {
	MobilityRook   board.Score
	MobilityHorse  board.Score
	MobilityCannon board.Score

	BonusBottomCannon     board.Score
	BonusPalaceHeartHorse board.Score

	KingSafetyPenaltyPerGuard board.Score

	DynamicBonusAttackPerMissingDefender board.Score
}

// DefaultConfig returns the evaluator's out-of-the-box tuning.
func DefaultConfig() *Config {
	return &Config{
		MobilityRook:   4,
		MobilityHorse:  6,
		MobilityCannon: 3,

		BonusBottomCannon:     20,
		BonusPalaceHeartHorse: 25,

		KingSafetyPenaltyPerGuard: 15,

		DynamicBonusAttackPerMissingDefender: 10,
	}
}
