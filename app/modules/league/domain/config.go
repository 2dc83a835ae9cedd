package leaguedomain

import "github.com/Black-And-White-Club/darts-league/app/shared/errs"

// RecalcCadence is how often handicap averages are refreshed.
type RecalcCadence string

const (
	CadenceWeekly   RecalcCadence = "weekly"
	CadencePerMatch RecalcCadence = "per_match"
	CadenceManual   RecalcCadence = "manual"
)

func (c RecalcCadence) IsValid() bool {
	switch c {
	case CadenceWeekly, CadencePerMatch, CadenceManual:
		return true
	default:
		return false
	}
}

// ScoringConfig is a league's match scoring rules.
type ScoringConfig struct {
	GamesPerMatch    int  `json:"gamesPerMatch"`
	PointsPerGameWin int  `json:"pointsPerGameWin"`
	BonusForTotal    bool `json:"bonusForTotal"`
	// ExtraExclude is stored and reported but has no effect: extra innings are
	// always left out of run totals.
	ExtraExclude     bool `json:"extraExclude"`
	BlindDefaultRuns int  `json:"blindDefaultRuns"`
}

// HandicapSettings is a league's handicap policy.
type HandicapSettings struct {
	Enabled        bool          `json:"enabled"`
	DefaultPercent int           `json:"defaultPercent"`
	RecalcCadence  RecalcCadence `json:"recalcCadence"`
}

// Validate checks settings submitted by a league admin.
func (h HandicapSettings) Validate() error {
	if h.DefaultPercent < 0 || h.DefaultPercent > 100 {
		return errs.Validation("Handicap percent must be between 0 and 100")
	}
	if !h.RecalcCadence.IsValid() {
		return errs.Validation("Recalculation cadence must be weekly, per_match or manual")
	}
	return nil
}

// Config is the immutable league configuration handed to every aggregation.
// It is a value: callers receive copies and cannot mutate a shared instance.
type Config struct {
	Scoring  ScoringConfig    `json:"scoring"`
	Handicap HandicapSettings `json:"handicap"`
}

// DefaultConfig is the configuration of a newly created league.
func DefaultConfig() Config {
	return Config{
		Scoring: ScoringConfig{
			GamesPerMatch:    4,
			PointsPerGameWin: 1,
			BonusForTotal:    true,
			ExtraExclude:     true,
			BlindDefaultRuns: 0,
		},
		Handicap: HandicapSettings{
			Enabled:        false,
			DefaultPercent: 70,
			RecalcCadence:  CadenceWeekly,
		},
	}
}

// WithHandicap returns a copy of c with new handicap settings.
func (c Config) WithHandicap(h HandicapSettings) Config {
	c.Handicap = h
	return c
}
