package console

import (
	"context"
	"sync"

	"github.com/alexanderramin/sufragio/internal/domain"
)

// Display strings for list failures.
const (
	BallotsLoadError   = "Error al cargar las papeletas"
	PositionsLoadError = "Error al cargar los cargos"
	SectionsLoadError  = "Error al cargar las secciones"
	ElectionsLoadError = "Error al cargar las elecciones"
)

// BallotSource lists generated ballots.
type BallotSource interface {
	ListBallots(ctx context.Context) ([]*domain.Ballot, error)
}

// BallotList is the ballot list view state plus the detail selection.
// Opening a detail uses the already-loaded list and makes no request.
type BallotList struct {
	*List[*domain.Ballot]

	mu     sync.Mutex
	detail *domain.Ballot
}

func NewBallotList(src BallotSource) *BallotList {
	return &BallotList{List: NewList[*domain.Ballot](src.ListBallots, BallotsLoadError)}
}

// Open selects the ballot with the given id for the detail view. It
// reports false if the id is not in the loaded list.
func (b *BallotList) Open(id int64) (*domain.Ballot, bool) {
	for _, ballot := range b.State().Data {
		if ballot.ID == id {
			b.mu.Lock()
			b.detail = ballot
			b.mu.Unlock()
			return ballot, true
		}
	}
	return nil, false
}

// Show opens a ballot obtained elsewhere, such as a fresh generation.
func (b *BallotList) Show(ballot *domain.Ballot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.detail = ballot
}

func (b *BallotList) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.detail = nil
}

// Detail returns the open ballot, if any.
func (b *BallotList) Detail() (*domain.Ballot, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.detail, b.detail != nil
}
