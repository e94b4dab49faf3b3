package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sufragio/internal/domain"
	"github.com/alexanderramin/sufragio/internal/repository"
	"github.com/alexanderramin/sufragio/internal/testutil"
)

func TestPositionRepo_CRUD(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	sections := repository.NewSQLiteSectionRepo(database)
	repo := repository.NewSQLitePositionRepo(database)

	sec := testutil.NewTestSection("Norte")
	require.NoError(t, sections.Create(ctx, sec))

	p := testutil.NewTestPosition("Concejal", sec.ID, testutil.WithDescription("Concejo municipal"))
	require.NoError(t, repo.Create(ctx, p))
	require.NotZero(t, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	got.State = domain.StateInactive
	got.SectionID = 0
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateInactive, again.State)
	assert.Zero(t, again.SectionID)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, p.ID), repository.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, p), repository.ErrNotFound)
}

func TestPositionRepo_ListBySectionIncludesInactive(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	sections := repository.NewSQLiteSectionRepo(database)
	repo := repository.NewSQLitePositionRepo(database)

	a := testutil.NewTestSection("A")
	b := testutil.NewTestSection("B")
	require.NoError(t, sections.Create(ctx, a))
	require.NoError(t, sections.Create(ctx, b))

	require.NoError(t, repo.Create(ctx, testutil.NewTestPosition("Uno", a.ID)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestPosition("Dos", b.ID)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestPosition("Tres", a.ID, testutil.WithPositionState(domain.StateInactive))))

	got, err := repo.ListBySection(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Uno", got[0].Name)
	assert.Equal(t, "Tres", got[1].Name)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSectionRepo_BoundaryOrdered(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := repository.NewSQLiteSectionRepo(database)

	sec := testutil.NewTestSection("Sur", testutil.WithBoundary([]domain.BoundaryPoint{
		{Latitude: 3, Longitude: 3, Order: 3},
		{Latitude: 1, Longitude: 1, Order: 1},
		{Latitude: 2, Longitude: 2, Order: 2},
	}))
	require.NoError(t, repo.Create(ctx, sec))

	got, err := repo.GetByID(ctx, sec.ID)
	require.NoError(t, err)
	require.Len(t, got.BoundaryPoints, 3)
	assert.Equal(t, 1, got.BoundaryPoints[0].Order)
	assert.Equal(t, 3, got.BoundaryPoints[2].Order)
	assert.True(t, got.IsClosed())

	empty := testutil.NewTestSection("Vacía", testutil.WithBoundary(nil), testutil.WithSectionState(domain.StateInactive))
	require.NoError(t, repo.Create(ctx, empty))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Len(t, list[0].BoundaryPoints, 3)
	assert.NotNil(t, list[1].BoundaryPoints)
	assert.Empty(t, list[1].BoundaryPoints)
	assert.Equal(t, domain.StateInactive, list[1].State)

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
