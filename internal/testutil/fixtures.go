package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/sufragio/internal/domain"
	"github.com/alexanderramin/sufragio/internal/repository"
)

var fixtureCounter atomic.Int64

// SquareBoundary returns a closed four-point boundary around (lat, lng).
func SquareBoundary(lat, lng float64) []domain.BoundaryPoint {
	const d = 0.01
	return []domain.BoundaryPoint{
		{Latitude: lat - d, Longitude: lng - d, Order: 1},
		{Latitude: lat - d, Longitude: lng + d, Order: 2},
		{Latitude: lat + d, Longitude: lng + d, Order: 3},
		{Latitude: lat + d, Longitude: lng - d, Order: 4},
	}
}

// Section options
type SectionOption func(*domain.Section)

func WithSectionState(s domain.EntityState) SectionOption {
	return func(sec *domain.Section) {
		sec.State = s
	}
}

func WithBoundary(points []domain.BoundaryPoint) SectionOption {
	return func(sec *domain.Section) {
		sec.BoundaryPoints = points
	}
}

func NewTestSection(name string, opts ...SectionOption) *domain.Section {
	s := &domain.Section{
		Name:           name,
		State:          domain.StateActive,
		BoundaryPoints: SquareBoundary(-0.18, -78.48),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Position options
type PositionOption func(*domain.Position)

func WithPositionState(s domain.EntityState) PositionOption {
	return func(p *domain.Position) {
		p.State = s
	}
}

func WithDescription(d string) PositionOption {
	return func(p *domain.Position) {
		p.Description = d
	}
}

func NewTestPosition(name string, sectionID int64, opts ...PositionOption) *domain.Position {
	p := &domain.Position{
		Name:      name,
		State:     domain.StateActive,
		SectionID: sectionID,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestElection(name string) *domain.Election {
	return &domain.Election{Name: name, Type: "general"}
}

func NewTestParty(name, color string) *domain.Party {
	return &domain.Party{Name: name, Color: color, Symbol: "símbolo"}
}

// NewTestCandidate returns an unsaved candidate record on the given slate.
func NewTestCandidate(first string, partyID, positionID, electionID int64) *repository.CandidateRecord {
	n := fixtureCounter.Add(1)
	return &repository.CandidateRecord{
		Candidate: domain.Candidate{
			FirstName: first,
			LastNames: fmt.Sprintf("Apellido%d", n),
			PhotoRef:  fmt.Sprintf("candidatos/%d.png", n),
		},
		PartyID:    partyID,
		PositionID: positionID,
		ElectionID: electionID,
	}
}

// Scenario is the reference data set: section 4 and election 2, where
// "Presidente" has one party with two candidates and "Alcalde" has none.
type Scenario struct {
	Key        domain.BallotKey
	Section    *domain.Section
	Election   *domain.Election
	Presidente *domain.Position
	Alcalde    *domain.Position
	Party      *domain.Party
}

// SeedScenario inserts padding rows so the scenario lands on section id 4
// and election id 2, then the scenario itself.
func SeedScenario(t *testing.T, database *sql.DB) *Scenario {
	t.Helper()
	ctx := context.Background()
	sections := repository.NewSQLiteSectionRepo(database)
	elections := repository.NewSQLiteElectionRepo(database)
	parties := repository.NewSQLitePartyRepo(database)
	positions := repository.NewSQLitePositionRepo(database)
	candidates := repository.NewSQLiteCandidateRepo(database)

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("seeding scenario: %v", err)
		}
	}

	for i := 1; i <= 3; i++ {
		must(sections.Create(ctx, NewTestSection(fmt.Sprintf("Relleno %d", i))))
	}
	must(elections.Create(ctx, NewTestElection("Consulta previa")))

	sc := &Scenario{
		Section:  NewTestSection("Centro"),
		Election: NewTestElection("Generales 2027"),
		Party:    NewTestParty("Partido Azul", "#0033cc"),
	}
	must(sections.Create(ctx, sc.Section))
	must(elections.Create(ctx, sc.Election))
	must(parties.Create(ctx, sc.Party))
	if sc.Section.ID != 4 || sc.Election.ID != 2 {
		t.Fatalf("scenario ids: section %d election %d", sc.Section.ID, sc.Election.ID)
	}

	sc.Presidente = NewTestPosition("Presidente", sc.Section.ID)
	sc.Alcalde = NewTestPosition("Alcalde", sc.Section.ID)
	must(positions.Create(ctx, sc.Presidente))
	must(positions.Create(ctx, sc.Alcalde))

	must(candidates.Create(ctx, NewTestCandidate("Ana", sc.Party.ID, sc.Presidente.ID, sc.Election.ID)))
	must(candidates.Create(ctx, NewTestCandidate("Luis", sc.Party.ID, sc.Presidente.ID, sc.Election.ID)))

	sc.Key = domain.BallotKey{SectionID: sc.Section.ID, ElectionID: sc.Election.ID}
	return sc
}
