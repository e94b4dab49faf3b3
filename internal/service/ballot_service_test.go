package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sufragio/internal/domain"
	"github.com/alexanderramin/sufragio/internal/repository"
	"github.com/alexanderramin/sufragio/internal/testutil"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func newBallotService(t *testing.T) (BallotService, *testutil.Scenario, *recordingObserver) {
	t.Helper()
	database := testutil.NewTestDB(t)
	sc := testutil.SeedScenario(t, database)
	obs := &recordingObserver{}
	svc := NewBallotService(repository.NewSQLiteBallotRepo(database), testutil.NewTestUoW(database), obs)
	return svc, sc, obs
}

func TestGenerate_Scenario(t *testing.T) {
	svc, sc, obs := newBallotService(t)

	b, err := svc.Generate(context.Background(), sc.Key)
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, int64(4), b.SectionID)
	assert.Equal(t, int64(2), b.ElectionID)
	assert.Equal(t, domain.StateActive, b.State)
	require.Len(t, b.Structure, 2)

	pres := b.Structure[0]
	assert.Equal(t, sc.Presidente.ID, pres.PositionID)
	assert.Equal(t, "Presidente", pres.PositionName)
	require.Len(t, pres.Candidacies, 1)
	assert.Equal(t, "Partido Azul", pres.Candidacies[0].PartyName)
	assert.Equal(t, "#0033cc", pres.Candidacies[0].PartyColor)
	require.Len(t, pres.Candidacies[0].Candidates, 2)
	assert.Equal(t, "Ana", pres.Candidacies[0].Candidates[0].FirstName)
	assert.Equal(t, "Luis", pres.Candidacies[0].Candidates[1].FirstName)

	alc := b.Structure[1]
	assert.Equal(t, "Alcalde", alc.PositionName)
	assert.NotNil(t, alc.Candidacies)
	assert.Empty(t, alc.Candidacies)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "generate-ballot", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 2, obs.events[0].Fields["candidates"])
}

func TestGenerate_TwiceYieldsSameBallot(t *testing.T) {
	svc, sc, _ := newBallotService(t)
	ctx := context.Background()

	first, err := svc.Generate(ctx, sc.Key)
	require.NoError(t, err)
	second, err := svc.Generate(ctx, sc.Key)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Structure, second.Structure)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGenerate_StoredBallotMatchesResponse(t *testing.T) {
	svc, sc, _ := newBallotService(t)
	ctx := context.Background()

	generated, err := svc.Generate(ctx, sc.Key)
	require.NoError(t, err)

	found, err := svc.FindByKey(ctx, sc.Key)
	require.NoError(t, err)
	assert.Equal(t, generated, found)
}

func TestGenerate_PositionWithoutCandidatesStillListed(t *testing.T) {
	database := testutil.NewTestDB(t)
	sc := testutil.SeedScenario(t, database)
	ctx := context.Background()
	require.NoError(t, repository.NewSQLitePositionRepo(database).Create(ctx,
		testutil.NewTestPosition("Concejal", sc.Section.ID, testutil.WithPositionState(domain.StateInactive))))

	svc := NewBallotService(repository.NewSQLiteBallotRepo(database), testutil.NewTestUoW(database))
	b, err := svc.Generate(ctx, sc.Key)
	require.NoError(t, err)

	positions, err := repository.NewSQLitePositionRepo(database).ListBySection(ctx, sc.Section.ID)
	require.NoError(t, err)
	assert.Equal(t, len(positions), b.PositionCount())
	assert.True(t, b.HasPosition(positions[2].ID))
}

func TestGenerate_Preconditions(t *testing.T) {
	database := testutil.NewTestDB(t)
	sc := testutil.SeedScenario(t, database)
	ctx := context.Background()
	inactive := testutil.NewTestSection("Cerrada", testutil.WithSectionState(domain.StateInactive))
	require.NoError(t, repository.NewSQLiteSectionRepo(database).Create(ctx, inactive))

	obs := &recordingObserver{}
	svc := NewBallotService(repository.NewSQLiteBallotRepo(database), testutil.NewTestUoW(database), obs)

	tests := []struct {
		name string
		key  domain.BallotKey
		want error
	}{
		{"incomplete key", domain.BallotKey{SectionID: sc.Section.ID}, ErrInvalidInput},
		{"unknown section", domain.BallotKey{SectionID: 999, ElectionID: sc.Election.ID}, ErrPrecondition},
		{"inactive section", domain.BallotKey{SectionID: inactive.ID, ElectionID: sc.Election.ID}, ErrPrecondition},
		{"unknown election", domain.BallotKey{SectionID: sc.Section.ID, ElectionID: 999}, ErrPrecondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := svc.Generate(ctx, tt.key)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	require.Len(t, obs.events, len(tests))
	for _, e := range obs.events {
		assert.False(t, e.Success)
	}
}

func TestFindByKey_NotFound(t *testing.T) {
	svc, sc, _ := newBallotService(t)
	_, err := svc.FindByKey(context.Background(), sc.Key)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestAssembleStructure_GroupsByPartyAndDedupes(t *testing.T) {
	positions := []*domain.Position{{ID: 1, Name: "Presidente"}, {ID: 2, Name: "Alcalde"}}
	azul := domain.Party{ID: 10, Name: "Azul"}
	rojo := domain.Party{ID: 11, Name: "Rojo"}
	rows := []repository.BallotCandidate{
		{PositionID: 1, Party: azul, Candidate: domain.Candidate{ID: 100, FirstName: "Ana"}},
		{PositionID: 1, Party: azul, Candidate: domain.Candidate{ID: 100, FirstName: "Ana"}},
		{PositionID: 1, Party: azul, Candidate: domain.Candidate{ID: 101, FirstName: "Luis"}},
		{PositionID: 1, Party: rojo, Candidate: domain.Candidate{ID: 102, FirstName: "Eva"}},
		{PositionID: 7, Party: rojo, Candidate: domain.Candidate{ID: 103, FirstName: "Fuera"}},
	}

	got := AssembleStructure(positions, rows)

	require.Len(t, got, 2)
	require.Len(t, got[0].Candidacies, 2)
	assert.Equal(t, "Azul", got[0].Candidacies[0].PartyName)
	assert.Len(t, got[0].Candidacies[0].Candidates, 2)
	assert.Equal(t, "Rojo", got[0].Candidacies[1].PartyName)
	assert.Empty(t, got[1].Candidacies)
}
