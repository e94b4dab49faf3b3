package sandbox

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/alexanderramin/sufragio/internal/db"
	"github.com/alexanderramin/sufragio/internal/importer"
	"github.com/alexanderramin/sufragio/internal/repository"
)

//go:embed demo.json
var demoJSON []byte

// DemoDataset returns the built-in demo data set. On an empty database it
// gives "Centro" id 4 and "Generales 2027" id 2.
func DemoDataset() (*importer.Dataset, error) {
	return importer.ParseDataset(demoJSON)
}

// Seed imports the demo data set. See Import.
func Seed(ctx context.Context, uow db.UnitOfWork) (bool, error) {
	ds, err := DemoDataset()
	if err != nil {
		return false, err
	}
	return Import(ctx, uow, ds)
}

// Import validates ds and writes it in one transaction. It does nothing
// when sections already exist, and reports whether rows were written.
func Import(ctx context.Context, uow db.UnitOfWork, ds *importer.Dataset) (bool, error) {
	if errs := importer.ValidateDataset(ds); len(errs) > 0 {
		return false, fmt.Errorf("invalid data set: %w", errors.Join(errs...))
	}
	plan, err := importer.Convert(ds)
	if err != nil {
		return false, err
	}

	written := false
	err = uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sections := repository.NewSQLiteSectionRepo(tx)
		existing, err := sections.List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}
		if err := writePlan(ctx, tx, plan); err != nil {
			return err
		}
		written = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return written, nil
}

func writePlan(ctx context.Context, tx db.DBTX, plan *importer.Plan) error {
	sections := repository.NewSQLiteSectionRepo(tx)
	for _, s := range plan.Sections {
		if err := sections.Create(ctx, s); err != nil {
			return fmt.Errorf("importing section %q: %w", s.Name, err)
		}
	}

	elections := repository.NewSQLiteElectionRepo(tx)
	for _, e := range plan.Elections {
		if err := elections.Create(ctx, e); err != nil {
			return fmt.Errorf("importing election %q: %w", e.Name, err)
		}
	}

	parties := repository.NewSQLitePartyRepo(tx)
	for _, p := range plan.Parties {
		if err := parties.Create(ctx, p); err != nil {
			return fmt.Errorf("importing party %q: %w", p.Name, err)
		}
	}

	positions := repository.NewSQLitePositionRepo(tx)
	for _, pp := range plan.Positions {
		if pp.Section != importer.Unassigned {
			pp.Position.SectionID = plan.Sections[pp.Section].ID
		}
		if err := positions.Create(ctx, pp.Position); err != nil {
			return fmt.Errorf("importing position %q: %w", pp.Position.Name, err)
		}
	}

	candidates := repository.NewSQLiteCandidateRepo(tx)
	for _, pc := range plan.Candidates {
		c := &repository.CandidateRecord{
			Candidate:  pc.Candidate,
			PartyID:    plan.Parties[pc.Party].ID,
			PositionID: plan.Positions[pc.Position].Position.ID,
			ElectionID: plan.Elections[pc.Election].ID,
		}
		if err := candidates.Create(ctx, c); err != nil {
			return fmt.Errorf("importing candidate %q: %w", pc.Candidate.FullName(), err)
		}
	}
	return nil
}
