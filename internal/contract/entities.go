// Package contract defines the JSON wire shapes of the electoral REST API.
// The console decodes into these types and validates them before mapping
// to domain values; the sandbox backend encodes them.
package contract

import "github.com/alexanderramin/sufragio/internal/domain"

// BoundaryPoint is one polygon vertex of a section.
type BoundaryPoint struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Order     int     `json:"order" validate:"gte=0"`
}

type Section struct {
	ID             int64           `json:"id" validate:"required,gt=0"`
	Name           string          `json:"name" validate:"required"`
	State          string          `json:"state,omitempty" validate:"omitempty,oneof=active inactive"`
	BoundaryPoints []BoundaryPoint `json:"boundaryPoints" validate:"dive"`
}

type Election struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`
	Type string `json:"type"`
}

type Position struct {
	ID          int64  `json:"id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	State       string `json:"state" validate:"required,oneof=active inactive"`
	SectionID   int64  `json:"sectionId" validate:"gte=0"`
}

// PositionRequest is the body of POST and PUT /positions. Omitted fields
// are left unchanged on update.
type PositionRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	State       *string `json:"state,omitempty"`
	SectionID   *int64  `json:"sectionId,omitempty"`
}

type Candidate struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	FirstName string `json:"firstName" validate:"required"`
	LastNames string `json:"lastNames"`
	PhotoRef  string `json:"photoRef,omitempty"`
}

type PartyCandidacy struct {
	PartyID     int64       `json:"partyId" validate:"required,gt=0"`
	PartyName   string      `json:"partyName" validate:"required"`
	PartyColor  string      `json:"partyColor"`
	PartySymbol string      `json:"partySymbol"`
	Candidates  []Candidate `json:"candidates" validate:"dive"`
}

type PositionOnBallot struct {
	PositionID   int64            `json:"positionId" validate:"required,gt=0"`
	PositionName string           `json:"positionName" validate:"required"`
	Candidacies  []PartyCandidacy `json:"candidacies" validate:"dive"`
}

type Ballot struct {
	ID         int64              `json:"id" validate:"required,gt=0"`
	SectionID  int64              `json:"sectionId,omitempty" validate:"gte=0"`
	ElectionID int64              `json:"electionId" validate:"required,gt=0"`
	State      string             `json:"state" validate:"required,oneof=active inactive"`
	Structure  []PositionOnBallot `json:"structure" validate:"required,dive"`
}

// ErrorBody is the JSON body the API returns with non-2xx statuses.
type ErrorBody struct {
	Message string `json:"message"`
}

// ── Domain mapping ───────────────────────────────────────────────────────────

func (s Section) ToDomain() *domain.Section {
	out := &domain.Section{
		ID:    s.ID,
		Name:  s.Name,
		State: domain.EntityState(s.State),
	}
	if out.State == "" {
		out.State = domain.StateActive
	}
	for _, p := range s.BoundaryPoints {
		out.BoundaryPoints = append(out.BoundaryPoints, domain.BoundaryPoint{
			Latitude: p.Latitude, Longitude: p.Longitude, Order: p.Order,
		})
	}
	return out
}

func SectionFromDomain(s *domain.Section) Section {
	out := Section{ID: s.ID, Name: s.Name, State: string(s.State), BoundaryPoints: []BoundaryPoint{}}
	for _, p := range s.BoundaryPoints {
		out.BoundaryPoints = append(out.BoundaryPoints, BoundaryPoint{
			Latitude: p.Latitude, Longitude: p.Longitude, Order: p.Order,
		})
	}
	return out
}

func (e Election) ToDomain() *domain.Election {
	return &domain.Election{ID: e.ID, Name: e.Name, Type: e.Type}
}

func ElectionFromDomain(e *domain.Election) Election {
	return Election{ID: e.ID, Name: e.Name, Type: e.Type}
}

func (p Position) ToDomain() *domain.Position {
	return &domain.Position{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		State:       domain.EntityState(p.State),
		SectionID:   p.SectionID,
	}
}

func PositionFromDomain(p *domain.Position) Position {
	return Position{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		State:       string(p.State),
		SectionID:   p.SectionID,
	}
}

// NewPositionRequest converts a domain input into a request body.
func NewPositionRequest(in domain.PositionInput) PositionRequest {
	req := PositionRequest{
		Name:        in.Name,
		Description: in.Description,
		SectionID:   in.SectionID,
	}
	if in.State != nil {
		s := string(*in.State)
		req.State = &s
	}
	return req
}

// ToInput converts a request body into a domain input. An unknown state is
// reported as an error.
func (r PositionRequest) ToInput() (domain.PositionInput, error) {
	in := domain.PositionInput{
		Name:        r.Name,
		Description: r.Description,
		SectionID:   r.SectionID,
	}
	if r.State != nil {
		st, err := domain.ParseEntityState(*r.State)
		if err != nil {
			return domain.PositionInput{}, err
		}
		in.State = &st
	}
	return in, nil
}

func (b Ballot) ToDomain() *domain.Ballot {
	out := &domain.Ballot{
		ID:         b.ID,
		SectionID:  b.SectionID,
		ElectionID: b.ElectionID,
		State:      domain.EntityState(b.State),
		Structure:  make([]domain.PositionOnBallot, 0, len(b.Structure)),
	}
	for _, p := range b.Structure {
		pos := domain.PositionOnBallot{
			PositionID:   p.PositionID,
			PositionName: p.PositionName,
			Candidacies:  make([]domain.PartyCandidacy, 0, len(p.Candidacies)),
		}
		for _, c := range p.Candidacies {
			pc := domain.PartyCandidacy{
				PartyID:     c.PartyID,
				PartyName:   c.PartyName,
				PartyColor:  c.PartyColor,
				PartySymbol: c.PartySymbol,
				Candidates:  make([]domain.Candidate, 0, len(c.Candidates)),
			}
			for _, cand := range c.Candidates {
				pc.Candidates = append(pc.Candidates, domain.Candidate{
					ID:        cand.ID,
					FirstName: cand.FirstName,
					LastNames: cand.LastNames,
					PhotoRef:  cand.PhotoRef,
				})
			}
			pos.Candidacies = append(pos.Candidacies, pc)
		}
		out.Structure = append(out.Structure, pos)
	}
	return out
}

// BallotFromDomain encodes a ballot. Empty slices are kept as [] so that
// positions without candidacies stay visible on the wire.
func BallotFromDomain(b *domain.Ballot) Ballot {
	out := Ballot{
		ID:         b.ID,
		SectionID:  b.SectionID,
		ElectionID: b.ElectionID,
		State:      string(b.State),
		Structure:  make([]PositionOnBallot, 0, len(b.Structure)),
	}
	for _, p := range b.Structure {
		pos := PositionOnBallot{
			PositionID:   p.PositionID,
			PositionName: p.PositionName,
			Candidacies:  make([]PartyCandidacy, 0, len(p.Candidacies)),
		}
		for _, c := range p.Candidacies {
			pc := PartyCandidacy{
				PartyID:     c.PartyID,
				PartyName:   c.PartyName,
				PartyColor:  c.PartyColor,
				PartySymbol: c.PartySymbol,
				Candidates:  make([]Candidate, 0, len(c.Candidates)),
			}
			for _, cand := range c.Candidates {
				pc.Candidates = append(pc.Candidates, Candidate{
					ID:        cand.ID,
					FirstName: cand.FirstName,
					LastNames: cand.LastNames,
					PhotoRef:  cand.PhotoRef,
				})
			}
			pos.Candidacies = append(pos.Candidacies, pc)
		}
		out.Structure = append(out.Structure, pos)
	}
	return out
}
