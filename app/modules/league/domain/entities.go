package leaguedomain

import (
	"time"

	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/google/uuid"
)

// League owns seasons, teams and configuration.
type League struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Config Config    `json:"config"`
}

// Season groups a league's matches.
type Season struct {
	ID        uuid.UUID `json:"id"`
	LeagueID  uuid.UUID `json:"leagueId"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	StartDate time.Time `json:"startDate"`
}

// Team is a league roster team.
type Team struct {
	ID       uuid.UUID `json:"id"`
	LeagueID uuid.UUID `json:"leagueId"`
	Name     string    `json:"name"`
	Division *string   `json:"division,omitempty"`
}

// InDivision reports whether the team belongs to the named division.
func (t Team) InDivision(division string) bool {
	return t.Division != nil && *t.Division == division
}

// PlayerStatus is a roster player's status.
type PlayerStatus string

const (
	PlayerActive   PlayerStatus = "active"
	PlayerInactive PlayerStatus = "inactive"
)

// Player belongs to exactly one team.
type Player struct {
	ID     uuid.UUID    `json:"id"`
	TeamID uuid.UUID    `json:"teamId"`
	Name   string       `json:"name"`
	Status PlayerStatus `json:"status"`
}

// Match is a scheduled contest between two teams in a season.
type Match struct {
	ID              uuid.UUID           `json:"id"`
	SeasonID        uuid.UUID           `json:"seasonId"`
	HomeTeamID      uuid.UUID           `json:"homeTeamId"`
	VisitorTeamID   uuid.UUID           `json:"visitorTeamId"`
	HandicapPercent *int                `json:"handicapPercent,omitempty"`
	BonusWinner     *scoringdomain.Side `json:"bonusWinner,omitempty"`
	ScheduledAt     time.Time           `json:"scheduledAt"`
}

// TeamFor returns the team playing the given side.
func (m Match) TeamFor(side scoringdomain.Side) uuid.UUID {
	if side == scoringdomain.SideHome {
		return m.HomeTeamID
	}
	return m.VisitorTeamID
}
