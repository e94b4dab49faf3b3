package service

import (
	"context"

	"github.com/alexanderramin/sufragio/internal/domain"
	"github.com/alexanderramin/sufragio/internal/repository"
)

type catalogService struct {
	sections  repository.SectionRepo
	elections repository.ElectionRepo
}

func NewCatalogService(sections repository.SectionRepo, elections repository.ElectionRepo) CatalogService {
	return &catalogService{sections: sections, elections: elections}
}

func (s *catalogService) ListSections(ctx context.Context) ([]*domain.Section, error) {
	return s.sections.List(ctx)
}

func (s *catalogService) GetSection(ctx context.Context, id int64) (*domain.Section, error) {
	return s.sections.GetByID(ctx, id)
}

func (s *catalogService) ListElections(ctx context.Context) ([]*domain.Election, error) {
	return s.elections.List(ctx)
}

func (s *catalogService) GetElection(ctx context.Context, id int64) (*domain.Election, error) {
	return s.elections.GetByID(ctx, id)
}
