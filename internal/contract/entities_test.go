package contract

import (
	"encoding/json"
	"testing"

	"github.com/alexanderramin/sufragio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBallotFromDomain_KeepsEmptyCandidacies(t *testing.T) {
	b := &domain.Ballot{
		ID: 7, SectionID: 4, ElectionID: 2, State: domain.StateActive,
		Structure: []domain.PositionOnBallot{{PositionID: 11, PositionName: "Alcalde"}},
	}

	data, err := json.Marshal(BallotFromDomain(b))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"candidacies":[]`)
}

func TestBallot_ToDomain_PreservesOrder(t *testing.T) {
	wire := Ballot{
		ID: 1, ElectionID: 2, State: "active",
		Structure: []PositionOnBallot{
			{PositionID: 2, PositionName: "Presidente", Candidacies: []PartyCandidacy{{
				PartyID: 9, PartyName: "Z",
				Candidates: []Candidate{{ID: 5, FirstName: "B"}, {ID: 3, FirstName: "A"}},
			}}},
			{PositionID: 1, PositionName: "Alcalde"},
		},
	}

	got := wire.ToDomain()
	require.Len(t, got.Structure, 2)
	assert.Equal(t, "Presidente", got.Structure[0].PositionName)
	assert.Equal(t, int64(5), got.Structure[0].Candidacies[0].Candidates[0].ID)
	assert.NotNil(t, got.Structure[1].Candidacies)
	assert.Empty(t, got.Structure[1].Candidacies)
}

func TestPositionRequest_ToInput(t *testing.T) {
	state := "activo"
	in, err := PositionRequest{State: &state}.ToInput()
	require.NoError(t, err)
	require.NotNil(t, in.State)
	assert.Equal(t, domain.StateActive, *in.State)

	bad := "paused"
	_, err = PositionRequest{State: &bad}.ToInput()
	assert.Error(t, err)
}

func TestSection_ToDomain_DefaultsState(t *testing.T) {
	s := Section{ID: 4, Name: "Distrito 4"}.ToDomain()
	assert.Equal(t, domain.StateActive, s.State)
}
