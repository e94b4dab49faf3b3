package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/sufragio/internal/db"
	"github.com/alexanderramin/sufragio/internal/domain"
	"github.com/alexanderramin/sufragio/internal/repository"
)

type ballotService struct {
	ballots  repository.BallotRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewBallotService(ballots repository.BallotRepo, uow db.UnitOfWork, observers ...UseCaseObserver) BallotService {
	return &ballotService{
		ballots:  ballots,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *ballotService) List(ctx context.Context) ([]*domain.Ballot, error) {
	return s.ballots.List(ctx)
}

func (s *ballotService) FindByKey(ctx context.Context, key domain.BallotKey) (*domain.Ballot, error) {
	return s.ballots.GetByKey(ctx, key)
}

func (s *ballotService) Generate(ctx context.Context, key domain.BallotKey) (ballot *domain.Ballot, err error) {
	fields := map[string]any{"section_id": key.SectionID, "election_id": key.ElectionID}
	defer observe(ctx, s.observer, "generate-ballot", time.Now().UTC(), fields, &err)

	if !key.Complete() {
		return nil, fmt.Errorf("%w: section and election ids are required", ErrInvalidInput)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := checkGenerationPreconditions(ctx, tx, key); err != nil {
			return err
		}

		positions, err := repository.NewSQLitePositionRepo(tx).ListBySection(ctx, key.SectionID)
		if err != nil {
			return err
		}
		candidates, err := repository.NewSQLiteCandidateRepo(tx).ListForBallot(ctx, key)
		if err != nil {
			return err
		}

		ballot = &domain.Ballot{
			SectionID:  key.SectionID,
			ElectionID: key.ElectionID,
			State:      domain.StateActive,
			Structure:  AssembleStructure(positions, candidates),
		}
		return repository.NewSQLiteBallotRepo(tx).Upsert(ctx, ballot)
	})
	if err != nil {
		return nil, err
	}
	fields["ballot_id"] = ballot.ID
	fields["positions"] = ballot.PositionCount()
	fields["candidates"] = ballot.CandidateCount()
	return ballot, nil
}

func checkGenerationPreconditions(ctx context.Context, tx db.DBTX, key domain.BallotKey) error {
	section, err := repository.NewSQLiteSectionRepo(tx).GetByID(ctx, key.SectionID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: section %d does not exist", ErrPrecondition, key.SectionID)
	}
	if err != nil {
		return err
	}
	if section.State != domain.StateActive {
		return fmt.Errorf("%w: section %d is inactive", ErrPrecondition, key.SectionID)
	}

	_, err = repository.NewSQLiteElectionRepo(tx).GetByID(ctx, key.ElectionID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: election %d does not exist", ErrPrecondition, key.ElectionID)
	}
	return err
}

// AssembleStructure lays out one entry per position, in the order given,
// including positions nobody is running for. Candidates are grouped by
// party in first-seen order; rows must arrive ordered by position, party
// and candidate id. Duplicate candidates are dropped.
func AssembleStructure(positions []*domain.Position, rows []repository.BallotCandidate) []domain.PositionOnBallot {
	byPosition := make(map[int64][]repository.BallotCandidate, len(positions))
	for _, row := range rows {
		byPosition[row.PositionID] = append(byPosition[row.PositionID], row)
	}

	structure := make([]domain.PositionOnBallot, 0, len(positions))
	for _, pos := range positions {
		entry := domain.PositionOnBallot{
			PositionID:   pos.ID,
			PositionName: pos.Name,
			Candidacies:  []domain.PartyCandidacy{},
		}
		partyIndex := map[int64]int{}
		seen := map[int64]bool{}
		for _, row := range byPosition[pos.ID] {
			if seen[row.Candidate.ID] {
				continue
			}
			seen[row.Candidate.ID] = true

			idx, ok := partyIndex[row.Party.ID]
			if !ok {
				idx = len(entry.Candidacies)
				partyIndex[row.Party.ID] = idx
				entry.Candidacies = append(entry.Candidacies, domain.PartyCandidacy{
					PartyID:     row.Party.ID,
					PartyName:   row.Party.Name,
					PartyColor:  row.Party.Color,
					PartySymbol: row.Party.Symbol,
					Candidates:  []domain.Candidate{},
				})
			}
			entry.Candidacies[idx].Candidates = append(entry.Candidacies[idx].Candidates, row.Candidate)
		}
		structure = append(structure, entry)
	}
	return structure
}
