package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sufragio/internal/repository"
	"github.com/alexanderramin/sufragio/internal/testutil"
)

// TestCascadeDelete_PositionToCandidates verifies positions -> candidates cascade.
func TestCascadeDelete_PositionToCandidates(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	sc := testutil.SeedScenario(t, database)

	positions := repository.NewSQLitePositionRepo(database)
	candidates := repository.NewSQLiteCandidateRepo(database)

	before, err := candidates.ListForBallot(ctx, sc.Key)
	require.NoError(t, err)
	require.Len(t, before, 2)

	require.NoError(t, positions.Delete(ctx, sc.Presidente.ID))

	after, err := candidates.ListForBallot(ctx, sc.Key)
	require.NoError(t, err)
	assert.Empty(t, after, "candidates should be cascade-deleted with their position")
}

// TestCascadeDelete_SectionClearsPositions verifies the positions.section_id
// reference is nulled, not cascaded, when a section row goes away.
func TestCascadeDelete_SectionClearsPositions(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	sc := testutil.SeedScenario(t, database)

	_, err := database.ExecContext(ctx, `DELETE FROM sections WHERE id = ?`, sc.Section.ID)
	require.NoError(t, err)

	positions := repository.NewSQLitePositionRepo(database)
	got, err := positions.GetByID(ctx, sc.Alcalde.ID)
	require.NoError(t, err)
	assert.Zero(t, got.SectionID)

	var points int
	require.NoError(t, database.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM boundary_points WHERE section_id = ?`, sc.Section.ID).Scan(&points))
	assert.Zero(t, points, "boundary points should be cascade-deleted with their section")
}
