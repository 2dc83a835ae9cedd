package leaguedb

import (
	"time"

	leaguedomain "github.com/Black-And-White-Club/darts-league/app/modules/league/domain"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// League is the leagues row; configuration is stored as flat columns.
type League struct {
	bun.BaseModel `bun:"table:leagues,alias:l"`

	ID               uuid.UUID `bun:"id,pk,type:uuid"`
	Name             string    `bun:"name,notnull"`
	GamesPerMatch    int       `bun:"games_per_match,notnull"`
	PointsPerGameWin int       `bun:"points_per_game_win,notnull"`
	BonusForTotal    bool      `bun:"bonus_for_total,notnull"`
	ExtraExclude     bool      `bun:"extra_exclude,notnull"`
	BlindDefaultRuns int       `bun:"blind_default_runs,notnull"`
	HandicapEnabled  bool      `bun:"handicap_enabled,notnull"`
	HandicapPercent  int       `bun:"handicap_percent,notnull"`
	HandicapCadence  string    `bun:"handicap_cadence,notnull"`
	CreatedAt        time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt        time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ToDomain converts the row to the domain league.
func (l *League) ToDomain() leaguedomain.League {
	return leaguedomain.League{
		ID:   l.ID,
		Name: l.Name,
		Config: leaguedomain.Config{
			Scoring: leaguedomain.ScoringConfig{
				GamesPerMatch:    l.GamesPerMatch,
				PointsPerGameWin: l.PointsPerGameWin,
				BonusForTotal:    l.BonusForTotal,
				ExtraExclude:     l.ExtraExclude,
				BlindDefaultRuns: l.BlindDefaultRuns,
			},
			Handicap: leaguedomain.HandicapSettings{
				Enabled:        l.HandicapEnabled,
				DefaultPercent: l.HandicapPercent,
				RecalcCadence:  leaguedomain.RecalcCadence(l.HandicapCadence),
			},
		},
	}
}

// LeagueFromDomain builds a row from a domain league.
func LeagueFromDomain(l leaguedomain.League) *League {
	return &League{
		ID:               l.ID,
		Name:             l.Name,
		GamesPerMatch:    l.Config.Scoring.GamesPerMatch,
		PointsPerGameWin: l.Config.Scoring.PointsPerGameWin,
		BonusForTotal:    l.Config.Scoring.BonusForTotal,
		ExtraExclude:     l.Config.Scoring.ExtraExclude,
		BlindDefaultRuns: l.Config.Scoring.BlindDefaultRuns,
		HandicapEnabled:  l.Config.Handicap.Enabled,
		HandicapPercent:  l.Config.Handicap.DefaultPercent,
		HandicapCadence:  string(l.Config.Handicap.RecalcCadence),
	}
}

// Season is the seasons row.
type Season struct {
	bun.BaseModel `bun:"table:seasons,alias:s"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	LeagueID  uuid.UUID `bun:"league_id,type:uuid,notnull"`
	Name      string    `bun:"name,notnull"`
	IsActive  bool      `bun:"is_active,notnull"`
	StartDate time.Time `bun:"start_date,notnull"`
}

func (s *Season) ToDomain() leaguedomain.Season {
	return leaguedomain.Season{
		ID:        s.ID,
		LeagueID:  s.LeagueID,
		Name:      s.Name,
		IsActive:  s.IsActive,
		StartDate: s.StartDate,
	}
}

// Team is the teams row.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID       uuid.UUID `bun:"id,pk,type:uuid"`
	LeagueID uuid.UUID `bun:"league_id,type:uuid,notnull"`
	Name     string    `bun:"name,notnull"`
	Division *string   `bun:"division"`
}

func (t *Team) ToDomain() leaguedomain.Team {
	return leaguedomain.Team{ID: t.ID, LeagueID: t.LeagueID, Name: t.Name, Division: t.Division}
}

// Player is the players row.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID     uuid.UUID `bun:"id,pk,type:uuid"`
	TeamID uuid.UUID `bun:"team_id,type:uuid,notnull"`
	Name   string    `bun:"name,notnull"`
	Status string    `bun:"status,notnull"`
}

func (p *Player) ToDomain() leaguedomain.Player {
	return leaguedomain.Player{ID: p.ID, TeamID: p.TeamID, Name: p.Name, Status: leaguedomain.PlayerStatus(p.Status)}
}

// Match is the matches row.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`

	ID              uuid.UUID `bun:"id,pk,type:uuid"`
	SeasonID        uuid.UUID `bun:"season_id,type:uuid,notnull"`
	HomeTeamID      uuid.UUID `bun:"home_team_id,type:uuid,notnull"`
	VisitorTeamID   uuid.UUID `bun:"visitor_team_id,type:uuid,notnull"`
	HandicapPercent *int      `bun:"handicap_percent"`
	BonusWinner     *string   `bun:"bonus_winner"`
	ScheduledAt     time.Time `bun:"scheduled_at,notnull"`
}

func (m *Match) ToDomain() leaguedomain.Match {
	out := leaguedomain.Match{
		ID:              m.ID,
		SeasonID:        m.SeasonID,
		HomeTeamID:      m.HomeTeamID,
		VisitorTeamID:   m.VisitorTeamID,
		HandicapPercent: m.HandicapPercent,
		ScheduledAt:     m.ScheduledAt,
	}
	if m.BonusWinner != nil {
		if side := scoringdomain.Side(*m.BonusWinner); side.Valid() {
			out.BonusWinner = &side
		}
	}
	return out
}
