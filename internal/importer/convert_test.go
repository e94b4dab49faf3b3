package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sufragio/internal/domain"
)

func TestConvert_Full(t *testing.T) {
	ds := validFullDataset()
	ds.Sections[0].Boundary[1].Order = ptrInt(7)
	require.Empty(t, ValidateDataset(ds))

	plan, err := Convert(ds)
	require.NoError(t, err)

	require.Len(t, plan.Sections, 2)
	norte := plan.Sections[0]
	assert.Equal(t, "Norte", norte.Name)
	assert.Equal(t, domain.StateActive, norte.State)
	require.Len(t, norte.BoundaryPoints, 3)
	assert.Equal(t, 1, norte.BoundaryPoints[0].Order)
	assert.Equal(t, 7, norte.BoundaryPoints[1].Order)
	assert.Equal(t, 3, norte.BoundaryPoints[2].Order)
	assert.Equal(t, -78.4, norte.BoundaryPoints[1].Longitude)
	assert.Equal(t, domain.StateInactive, plan.Sections[1].State)

	require.Len(t, plan.Elections, 1)
	assert.Equal(t, "general", plan.Elections[0].Type)
	require.Len(t, plan.Parties, 1)
	assert.Equal(t, "#0033cc", plan.Parties[0].Color)

	require.Len(t, plan.Positions, 2)
	assert.Equal(t, 0, plan.Positions[0].Section)
	assert.Equal(t, Unassigned, plan.Positions[1].Section)
	assert.Equal(t, domain.StateActive, plan.Positions[1].Position.State)

	require.Len(t, plan.Candidates, 1)
	c := plan.Candidates[0]
	assert.Equal(t, "Ana Torres", c.Candidate.FullName())
	assert.Equal(t, 0, c.Party)
	assert.Equal(t, 0, c.Position)
	assert.Equal(t, 0, c.Election)
}

func TestConvert_UnresolvedRef(t *testing.T) {
	ds := validFullDataset()
	ds.Candidates[0].PositionRef = "alcalde"

	_, err := Convert(ds)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `position_ref "alcalde"`)
}
