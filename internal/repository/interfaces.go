// Package repository persists the sandbox backend's entities in SQLite.
package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/sufragio/internal/domain"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// CandidateRecord is a candidate together with the slate it belongs to.
type CandidateRecord struct {
	domain.Candidate
	PartyID    int64
	PositionID int64
	ElectionID int64
}

// BallotCandidate is a joined row used to assemble a ballot.
type BallotCandidate struct {
	PositionID int64
	Party      domain.Party
	Candidate  domain.Candidate
}

type SectionRepo interface {
	Create(ctx context.Context, s *domain.Section) error
	GetByID(ctx context.Context, id int64) (*domain.Section, error)
	List(ctx context.Context) ([]*domain.Section, error)
}

type ElectionRepo interface {
	Create(ctx context.Context, e *domain.Election) error
	GetByID(ctx context.Context, id int64) (*domain.Election, error)
	List(ctx context.Context) ([]*domain.Election, error)
}

type PartyRepo interface {
	Create(ctx context.Context, p *domain.Party) error
}

type PositionRepo interface {
	Create(ctx context.Context, p *domain.Position) error
	GetByID(ctx context.Context, id int64) (*domain.Position, error)
	List(ctx context.Context) ([]*domain.Position, error)
	ListBySection(ctx context.Context, sectionID int64) ([]*domain.Position, error)
	Update(ctx context.Context, p *domain.Position) error
	Delete(ctx context.Context, id int64) error
}

type CandidateRepo interface {
	Create(ctx context.Context, c *CandidateRecord) error
	// ListForBallot returns the candidates running in the election for
	// positions of the section, ordered by position, party and candidate id.
	ListForBallot(ctx context.Context, key domain.BallotKey) ([]BallotCandidate, error)
}

type BallotRepo interface {
	// Upsert stores the ballot for its key. Regenerating a key keeps the
	// existing row id and creation time.
	Upsert(ctx context.Context, b *domain.Ballot) error
	GetByID(ctx context.Context, id int64) (*domain.Ballot, error)
	GetByKey(ctx context.Context, key domain.BallotKey) (*domain.Ballot, error)
	List(ctx context.Context) ([]*domain.Ballot, error)
}
