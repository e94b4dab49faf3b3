// Package service holds the sandbox backend's use cases: position
// maintenance, read-only catalogs, and the ballot assembler.
package service

import (
	"context"

	"github.com/alexanderramin/sufragio/internal/domain"
)

type CatalogService interface {
	ListSections(ctx context.Context) ([]*domain.Section, error)
	GetSection(ctx context.Context, id int64) (*domain.Section, error)
	ListElections(ctx context.Context) ([]*domain.Election, error)
	GetElection(ctx context.Context, id int64) (*domain.Election, error)
}

type PositionService interface {
	List(ctx context.Context) ([]*domain.Position, error)
	GetByID(ctx context.Context, id int64) (*domain.Position, error)
	Create(ctx context.Context, in domain.PositionInput) (*domain.Position, error)
	Update(ctx context.Context, id int64, in domain.PositionInput) (*domain.Position, error)
	Delete(ctx context.Context, id int64) error
}

// BallotService assembles and stores ballots.
type BallotService interface {
	// Generate builds the ballot for key from current data and stores it,
	// replacing any earlier ballot for the same key.
	Generate(ctx context.Context, key domain.BallotKey) (*domain.Ballot, error)
	List(ctx context.Context) ([]*domain.Ballot, error)
	FindByKey(ctx context.Context, key domain.BallotKey) (*domain.Ballot, error)
}
