package testutils

import (
	"context"
	"fmt"
	"time"

	leaguedomain "github.com/Black-And-White-Club/darts-league/app/modules/league/domain"
	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	scoringdb "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/repositories"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TestDataGenerator creates league directory rows for integration tests.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}
	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed used, for reproducing a failure.
func (g *TestDataGenerator) Seed() int64 {
	return g.seed
}

// GenerateLeague returns a league row with the default configuration.
func (g *TestDataGenerator) GenerateLeague() leaguedb.League {
	l := leaguedb.LeagueFromDomain(leaguedomain.League{
		ID:     uuid.New(),
		Name:   fmt.Sprintf("%s Darts League", g.faker.City()),
		Config: leaguedomain.DefaultConfig(),
	})
	return *l
}

// GenerateSeason returns a season row for the league.
func (g *TestDataGenerator) GenerateSeason(leagueID uuid.UUID, active bool) leaguedb.Season {
	return leaguedb.Season{
		ID:        uuid.New(),
		LeagueID:  leagueID,
		Name:      fmt.Sprintf("Season %d", g.faker.Number(1, 99)),
		IsActive:  active,
		StartDate: time.Date(2026, time.September, g.faker.Number(1, 28), 0, 0, 0, 0, time.UTC),
	}
}

// GenerateTeams returns count teams in the league, alternating between the
// given divisions when any are passed.
func (g *TestDataGenerator) GenerateTeams(leagueID uuid.UUID, count int, divisions ...string) []leaguedb.Team {
	teams := make([]leaguedb.Team, count)
	for i := range teams {
		teams[i] = leaguedb.Team{
			ID:       uuid.New(),
			LeagueID: leagueID,
			Name:     fmt.Sprintf("%s %d", g.faker.Company(), i+1),
		}
		if len(divisions) > 0 {
			d := divisions[i%len(divisions)]
			teams[i].Division = &d
		}
	}
	return teams
}

// GeneratePlayers returns count active players on the team.
func (g *TestDataGenerator) GeneratePlayers(teamID uuid.UUID, count int) []leaguedb.Player {
	players := make([]leaguedb.Player, count)
	for i := range players {
		players[i] = leaguedb.Player{
			ID:     uuid.New(),
			TeamID: teamID,
			Name:   g.faker.Name(),
			Status: string(leaguedomain.PlayerActive),
		}
	}
	return players
}

// GenerateInnings returns a regulation ledger with random runs for both sides.
func (g *TestDataGenerator) GenerateInnings() []scoringdomain.Inning {
	innings := make([]scoringdomain.Inning, 0, 2*scoringdomain.RegulationInnings)
	for n := 1; n <= scoringdomain.RegulationInnings; n++ {
		innings = append(innings,
			scoringdomain.NewInning(n, scoringdomain.SideHome, g.faker.Number(scoringdomain.MinRuns, scoringdomain.MaxRuns)),
			scoringdomain.NewInning(n, scoringdomain.SideVisitor, g.faker.Number(scoringdomain.MinRuns, scoringdomain.MaxRuns)),
		)
	}
	return innings
}

// Fixture is a seeded league: one active season and two teams with rosters.
type Fixture struct {
	League  leaguedb.League
	Season  leaguedb.Season
	Home    leaguedb.Team
	Visitor leaguedb.Team
	// Players by team id.
	Players map[uuid.UUID][]leaguedb.Player
}

// SeedFixture inserts a league with an active season, two teams in separate
// divisions and playersPerTeam players each.
func (g *TestDataGenerator) SeedFixture(ctx context.Context, db bun.IDB, playersPerTeam int) (*Fixture, error) {
	league := g.GenerateLeague()
	if _, err := db.NewInsert().Model(&league).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert league: %w", err)
	}

	season := g.GenerateSeason(league.ID, true)
	if _, err := db.NewInsert().Model(&season).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert season: %w", err)
	}

	teams := g.GenerateTeams(league.ID, 2, "East", "West")
	if _, err := db.NewInsert().Model(&teams).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert teams: %w", err)
	}

	fx := &Fixture{
		League:  league,
		Season:  season,
		Home:    teams[0],
		Visitor: teams[1],
		Players: make(map[uuid.UUID][]leaguedb.Player, len(teams)),
	}
	for _, t := range teams {
		players := g.GeneratePlayers(t.ID, playersPerTeam)
		if _, err := db.NewInsert().Model(&players).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to insert players: %w", err)
		}
		fx.Players[t.ID] = players
	}
	return fx, nil
}

// SeedMatch inserts a match between the fixture's teams and one game per
// player pairing, slot by slot.
func (fx *Fixture) SeedMatch(ctx context.Context, db bun.IDB, scheduledAt time.Time) (leaguedb.Match, []scoringdb.Game, error) {
	match := leaguedb.Match{
		ID:            uuid.New(),
		SeasonID:      fx.Season.ID,
		HomeTeamID:    fx.Home.ID,
		VisitorTeamID: fx.Visitor.ID,
		ScheduledAt:   scheduledAt,
	}
	if _, err := db.NewInsert().Model(&match).Exec(ctx); err != nil {
		return leaguedb.Match{}, nil, fmt.Errorf("failed to insert match: %w", err)
	}

	home := fx.Players[fx.Home.ID]
	visitor := fx.Players[fx.Visitor.ID]
	games := make([]scoringdb.Game, 0, len(home))
	for i := range home {
		game := scoringdomain.Game{
			ID:      uuid.New(),
			MatchID: match.ID,
			Slot:    i + 1,
			Home:    scoringdomain.RealPlayer(home[i].ID),
			Visitor: scoringdomain.Blind(),
		}
		if i < len(visitor) {
			game.Visitor = scoringdomain.RealPlayer(visitor[i].ID)
		}
		games = append(games, *scoringdb.GameFromDomain(game))
	}
	if len(games) > 0 {
		if _, err := db.NewInsert().Model(&games).Exec(ctx); err != nil {
			return leaguedb.Match{}, nil, fmt.Errorf("failed to insert games: %w", err)
		}
	}
	return match, games, nil
}
