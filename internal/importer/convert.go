package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sufragio/internal/domain"
)

// Unassigned marks a planned position without a section.
const Unassigned = -1

// Plan is a converted data set. Cross references are indexes into the
// earlier slices, so records can be inserted in field order and linked by
// the ids the store assigns.
type Plan struct {
	Sections   []*domain.Section
	Elections  []*domain.Election
	Parties    []*domain.Party
	Positions  []PlannedPosition
	Candidates []PlannedCandidate
}

type PlannedPosition struct {
	Position *domain.Position
	Section  int // index into Sections, or Unassigned
}

type PlannedCandidate struct {
	Candidate domain.Candidate
	Party     int
	Position  int
	Election  int
}

// Convert transforms a validated Dataset into a Plan.
// Call ValidateDataset first; Convert only reports unresolved refs.
func Convert(ds *Dataset) (*Plan, error) {
	plan := &Plan{}

	sectionIdx := make(map[string]int, len(ds.Sections))
	for i, s := range ds.Sections {
		sectionIdx[s.Ref] = i
		points := make([]domain.BoundaryPoint, 0, len(s.Boundary))
		for j, pt := range s.Boundary {
			points = append(points, domain.BoundaryPoint{
				Latitude:  pt.Lat,
				Longitude: pt.Lng,
				Order:     domain.IntFromPtrWithDefault(j+1, pt.Order),
			})
		}
		plan.Sections = append(plan.Sections, &domain.Section{
			Name:           strings.TrimSpace(s.Name),
			State:          stateOrActive(s.State),
			BoundaryPoints: points,
		})
	}

	electionIdx := make(map[string]int, len(ds.Elections))
	for i, e := range ds.Elections {
		electionIdx[e.Ref] = i
		plan.Elections = append(plan.Elections, &domain.Election{
			Name: strings.TrimSpace(e.Name),
			Type: domain.CoalesceStr(strings.TrimSpace(e.Type), "general"),
		})
	}

	partyIdx := make(map[string]int, len(ds.Parties))
	for i, p := range ds.Parties {
		partyIdx[p.Ref] = i
		plan.Parties = append(plan.Parties, &domain.Party{
			Name:   strings.TrimSpace(p.Name),
			Color:  p.Color,
			Symbol: p.Symbol,
		})
	}

	positionIdx := make(map[string]int, len(ds.Positions))
	for i, p := range ds.Positions {
		positionIdx[p.Ref] = i
		section := Unassigned
		if p.SectionRef != "" {
			idx, ok := sectionIdx[p.SectionRef]
			if !ok {
				return nil, fmt.Errorf("section_ref %q not found for position %q", p.SectionRef, p.Ref)
			}
			section = idx
		}
		plan.Positions = append(plan.Positions, PlannedPosition{
			Position: &domain.Position{
				Name:        strings.TrimSpace(p.Name),
				Description: p.Description,
				State:       stateOrActive(p.State),
			},
			Section: section,
		})
	}

	for _, c := range ds.Candidates {
		party, ok := partyIdx[c.PartyRef]
		if !ok {
			return nil, fmt.Errorf("party_ref %q not found for candidate %q", c.PartyRef, c.FirstName)
		}
		position, ok := positionIdx[c.PositionRef]
		if !ok {
			return nil, fmt.Errorf("position_ref %q not found for candidate %q", c.PositionRef, c.FirstName)
		}
		election, ok := electionIdx[c.ElectionRef]
		if !ok {
			return nil, fmt.Errorf("election_ref %q not found for candidate %q", c.ElectionRef, c.FirstName)
		}
		plan.Candidates = append(plan.Candidates, PlannedCandidate{
			Candidate: domain.Candidate{
				FirstName: strings.TrimSpace(c.FirstName),
				LastNames: strings.TrimSpace(c.LastNames),
				PhotoRef:  c.Photo,
			},
			Party:    party,
			Position: position,
			Election: election,
		})
	}

	return plan, nil
}

func stateOrActive(s string) domain.EntityState {
	if st, err := domain.ParseEntityState(s); err == nil {
		return st
	}
	return domain.StateActive
}
