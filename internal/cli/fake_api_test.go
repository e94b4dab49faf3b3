package cli

import (
	"context"
	"net/http"
	"sync"

	"github.com/alexanderramin/sufragio/internal/api"
	"github.com/alexanderramin/sufragio/internal/assets"
	"github.com/alexanderramin/sufragio/internal/config"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// fakeAPI is an in-memory ConsoleAPI holding the Centro / Generales 2027
// scenario. Failures and blocking are injected per operation.
type fakeAPI struct {
	mu sync.Mutex

	sections  []*domain.Section
	elections []*domain.Election
	positions []*domain.Position
	ballots   []*domain.Ballot
	nextID    int64

	generateErr   error
	generateGate  chan struct{} // when set, GenerateBallot waits on it
	listBallotErr error

	generateCalls int
	listCalls     int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		sections: []*domain.Section{
			{ID: 1, Name: "Norte", State: domain.StateActive},
			{ID: 3, Name: "Valle", State: domain.StateInactive},
			{ID: 4, Name: "Centro", State: domain.StateActive},
		},
		elections: []*domain.Election{
			{ID: 1, Name: "Consulta popular 2026", Type: "consulta"},
			{ID: 2, Name: "Generales 2027", Type: "general"},
		},
		positions: []*domain.Position{
			{ID: 1, Name: "Presidente", State: domain.StateActive, SectionID: 4},
			{ID: 2, Name: "Alcalde", State: domain.StateActive, SectionID: 4},
		},
		nextID: 100,
	}
}

func scenarioStructure() []domain.PositionOnBallot {
	return []domain.PositionOnBallot{
		{
			PositionID:   1,
			PositionName: "Presidente",
			Candidacies: []domain.PartyCandidacy{{
				PartyID:    1,
				PartyName:  "Partido Azul",
				PartyColor: "#0033cc",
				Candidates: []domain.Candidate{
					{ID: 1, FirstName: "Ana", LastNames: "Ruiz"},
					{ID: 2, FirstName: "Luis", LastNames: "Mena", PhotoRef: `candidatos\luis-mena.png`},
				},
			}},
		},
		{PositionID: 2, PositionName: "Alcalde", Candidacies: []domain.PartyCandidacy{}},
	}
}

// remoteError builds the error the real client returns for a status.
func remoteError(op string, status int, message string) error {
	return &api.Error{Kind: api.KindRemote, Op: op, Status: status, Message: message}
}

func (f *fakeAPI) ListBallots(context.Context) ([]*domain.Ballot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listBallotErr != nil {
		return nil, f.listBallotErr
	}
	return append([]*domain.Ballot(nil), f.ballots...), nil
}

func (f *fakeAPI) GenerateBallot(_ context.Context, key domain.BallotKey) (*domain.Ballot, error) {
	f.mu.Lock()
	f.generateCalls++
	gate := f.generateGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	for _, b := range f.ballots {
		if b.Key() == key {
			return b, nil
		}
	}
	f.nextID++
	b := &domain.Ballot{ID: f.nextID, SectionID: key.SectionID, ElectionID: key.ElectionID, State: domain.StateActive, Structure: scenarioStructure()}
	f.ballots = append(f.ballots, b)
	return b, nil
}

func (f *fakeAPI) FindBallot(_ context.Context, key domain.BallotKey) (*domain.Ballot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.ballots {
		if b.Key() == key {
			return b, nil
		}
	}
	return nil, remoteError("ballots.find", http.StatusNotFound, "ballot not found")
}

func (f *fakeAPI) ListSections(context.Context) ([]*domain.Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.Section(nil), f.sections...), nil
}

func (f *fakeAPI) GetSection(_ context.Context, id int64) (*domain.Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sections {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, remoteError("sections.get", http.StatusNotFound, "section not found")
}

func (f *fakeAPI) ListElections(context.Context) ([]*domain.Election, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.Election(nil), f.elections...), nil
}

func (f *fakeAPI) ListPositions(context.Context) ([]*domain.Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.Position(nil), f.positions...), nil
}

func (f *fakeAPI) GetPosition(_ context.Context, id int64) (*domain.Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.positions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, remoteError("positions.get", http.StatusNotFound, "position not found")
}

func (f *fakeAPI) CreatePosition(_ context.Context, in domain.PositionInput) (*domain.Position, error) {
	if err := in.ValidateCreate(); err != nil {
		return nil, &api.Error{Kind: api.KindValidation, Op: "positions.create", Message: err.Error()}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p := &domain.Position{ID: f.nextID, State: domain.StateActive}
	applyFakeInput(p, in)
	f.positions = append(f.positions, p)
	return p, nil
}

func (f *fakeAPI) UpdatePosition(_ context.Context, id int64, in domain.PositionInput) (*domain.Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.positions {
		if p.ID == id {
			updated := *p
			applyFakeInput(&updated, in)
			f.positions[i] = &updated
			return &updated, nil
		}
	}
	return nil, remoteError("positions.update", http.StatusNotFound, "position not found")
}

func (f *fakeAPI) DeletePosition(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.positions {
		if p.ID == id {
			f.positions = append(f.positions[:i], f.positions[i+1:]...)
			return nil
		}
	}
	return remoteError("positions.delete", http.StatusNotFound, "position not found")
}

func (f *fakeAPI) BaseURL() string { return "http://fake.test" }

func (f *fakeAPI) calls() (generate, list int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generateCalls, f.listCalls
}

func (f *fakeAPI) positionNamed(name string) *domain.Position {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.positions {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func applyFakeInput(p *domain.Position, in domain.PositionInput) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.State != nil {
		p.State = *in.State
	}
	if in.SectionID != nil {
		p.SectionID = *in.SectionID
	}
}

// newFakeApp returns an App over fake. The display delay is long so tests
// deliver the settle message themselves.
func newFakeApp(fake *fakeAPI) *App {
	cfg := config.Defaults()
	cfg.Console.DisplayDelayMs = 60_000
	return &App{
		Config: cfg,
		API:    fake,
		Photos: assets.NewResolver(cfg.Assets.BaseURL),
	}
}
