package cli

import (
	"context"

	"github.com/alexanderramin/sufragio/internal/api"
	"github.com/alexanderramin/sufragio/internal/console"
	"github.com/alexanderramin/sufragio/internal/domain"
	"github.com/alexanderramin/sufragio/internal/generation"
)

// ConsoleAPI is the slice of the repository client the console uses.
type ConsoleAPI interface {
	console.BallotSource
	generation.Generator
	FindBallot(ctx context.Context, key domain.BallotKey) (*domain.Ballot, error)

	ListSections(ctx context.Context) ([]*domain.Section, error)
	GetSection(ctx context.Context, id int64) (*domain.Section, error)
	ListElections(ctx context.Context) ([]*domain.Election, error)

	ListPositions(ctx context.Context) ([]*domain.Position, error)
	GetPosition(ctx context.Context, id int64) (*domain.Position, error)
	CreatePosition(ctx context.Context, in domain.PositionInput) (*domain.Position, error)
	UpdatePosition(ctx context.Context, id int64, in domain.PositionInput) (*domain.Position, error)
	DeletePosition(ctx context.Context, id int64) error

	BaseURL() string
}

var _ ConsoleAPI = (*api.Client)(nil)
