package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sufragio/internal/db"
	"github.com/alexanderramin/sufragio/internal/domain"
	"github.com/alexanderramin/sufragio/internal/repository"
)

type positionService struct {
	positions repository.PositionRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewPositionService(positions repository.PositionRepo, uow db.UnitOfWork, observers ...UseCaseObserver) PositionService {
	return &positionService{
		positions: positions,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *positionService) List(ctx context.Context) ([]*domain.Position, error) {
	return s.positions.List(ctx)
}

func (s *positionService) GetByID(ctx context.Context, id int64) (*domain.Position, error) {
	return s.positions.GetByID(ctx, id)
}

func (s *positionService) Create(ctx context.Context, in domain.PositionInput) (p *domain.Position, err error) {
	defer observe(ctx, s.observer, "create-position", time.Now().UTC(), nil, &err)

	if err = in.ValidateCreate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	p = &domain.Position{State: domain.StateActive}
	applyInput(p, in)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := requireSection(ctx, tx, p.SectionID); err != nil {
			return err
		}
		return repository.NewSQLitePositionRepo(tx).Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *positionService) Update(ctx context.Context, id int64, in domain.PositionInput) (p *domain.Position, err error) {
	defer observe(ctx, s.observer, "update-position", time.Now().UTC(), map[string]any{"position_id": id}, &err)

	if err = in.ValidateUpdate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLitePositionRepo(tx)
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		applyInput(current, in)
		if in.SectionID != nil {
			if err := requireSection(ctx, tx, current.SectionID); err != nil {
				return err
			}
		}
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		p = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *positionService) Delete(ctx context.Context, id int64) (err error) {
	defer observe(ctx, s.observer, "delete-position", time.Now().UTC(), map[string]any{"position_id": id}, &err)
	return s.positions.Delete(ctx, id)
}

func applyInput(p *domain.Position, in domain.PositionInput) {
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.State != nil {
		p.State = *in.State
	}
	if in.SectionID != nil {
		p.SectionID = *in.SectionID
	}
}

// requireSection checks that a referenced section exists. Zero means the
// position is unassigned.
func requireSection(ctx context.Context, tx db.DBTX, sectionID int64) error {
	if sectionID == 0 {
		return nil
	}
	_, err := repository.NewSQLiteSectionRepo(tx).GetByID(ctx, sectionID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: section %d does not exist", ErrPrecondition, sectionID)
	}
	return err
}
