package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sufragio/internal/db"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// SQLitePartyRepo implements PartyRepo.
type SQLitePartyRepo struct {
	db db.DBTX
}

func NewSQLitePartyRepo(conn db.DBTX) *SQLitePartyRepo {
	return &SQLitePartyRepo{db: conn}
}

func (r *SQLitePartyRepo) Create(ctx context.Context, p *domain.Party) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO parties (name, color, symbol) VALUES (?, ?, ?)`, p.Name, p.Color, p.Symbol)
	if err != nil {
		return fmt.Errorf("inserting party: %w", err)
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading party id: %w", err)
	}
	return nil
}
