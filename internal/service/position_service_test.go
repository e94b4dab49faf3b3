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

func ptr[T any](v T) *T { return &v }

func TestPositionService_CreateAndUpdate(t *testing.T) {
	database := testutil.NewTestDB(t)
	sc := testutil.SeedScenario(t, database)
	svc := NewPositionService(repository.NewSQLitePositionRepo(database), testutil.NewTestUoW(database))
	ctx := context.Background()

	p, err := svc.Create(ctx, domain.PositionInput{
		Name:      ptr("  Concejal  "),
		SectionID: ptr(sc.Section.ID),
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Concejal", p.Name)
	assert.Equal(t, domain.StateActive, p.State)

	updated, err := svc.Update(ctx, p.ID, domain.PositionInput{State: ptr(domain.StateInactive)})
	require.NoError(t, err)
	assert.Equal(t, "Concejal", updated.Name)
	assert.Equal(t, domain.StateInactive, updated.State)
	assert.Equal(t, sc.Section.ID, updated.SectionID)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestPositionService_RejectsInvalidInput(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPositionService(repository.NewSQLitePositionRepo(database), testutil.NewTestUoW(database))
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.PositionInput{Name: ptr(" ")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, 1, domain.PositionInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPositionService_UnknownSection(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPositionService(repository.NewSQLitePositionRepo(database), testutil.NewTestUoW(database))

	_, err := svc.Create(context.Background(), domain.PositionInput{Name: ptr("Concejal"), SectionID: ptr(int64(42))})
	assert.ErrorIs(t, err, ErrPrecondition)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPositionService_UpdateAndDeleteMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPositionService(repository.NewSQLitePositionRepo(database), testutil.NewTestUoW(database))
	ctx := context.Background()

	_, err := svc.Update(ctx, 404, domain.PositionInput{Name: ptr("X")})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 404), repository.ErrNotFound)
}

func TestPositionService_UpdateRollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	sc := testutil.SeedScenario(t, database)
	injected := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Err: injected}
	svc := NewPositionService(repository.NewSQLitePositionRepo(database), uow)
	ctx := context.Background()

	_, err := svc.Update(ctx, sc.Alcalde.ID, domain.PositionInput{Name: ptr("Alcaldesa")})
	assert.ErrorIs(t, err, injected)

	got, err := svc.GetByID(ctx, sc.Alcalde.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alcalde", got.Name)
}

func TestCatalogService(t *testing.T) {
	database := testutil.NewTestDB(t)
	sc := testutil.SeedScenario(t, database)
	svc := NewCatalogService(repository.NewSQLiteSectionRepo(database), repository.NewSQLiteElectionRepo(database))
	ctx := context.Background()

	sections, err := svc.ListSections(ctx)
	require.NoError(t, err)
	assert.Len(t, sections, 4)

	sec, err := svc.GetSection(ctx, sc.Section.ID)
	require.NoError(t, err)
	assert.Equal(t, "Centro", sec.Name)
	assert.True(t, sec.IsClosed())

	elections, err := svc.ListElections(ctx)
	require.NoError(t, err)
	assert.Len(t, elections, 2)

	_, err = svc.GetElection(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
