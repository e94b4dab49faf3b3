package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/sufragio/internal/db"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// SQLiteElectionRepo implements ElectionRepo.
type SQLiteElectionRepo struct {
	db db.DBTX
}

func NewSQLiteElectionRepo(conn db.DBTX) *SQLiteElectionRepo {
	return &SQLiteElectionRepo{db: conn}
}

func (r *SQLiteElectionRepo) Create(ctx context.Context, e *domain.Election) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO elections (name, type) VALUES (?, ?)`, e.Name, e.Type)
	if err != nil {
		return fmt.Errorf("inserting election: %w", err)
	}
	if e.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading election id: %w", err)
	}
	return nil
}

func (r *SQLiteElectionRepo) GetByID(ctx context.Context, id int64) (*domain.Election, error) {
	var e domain.Election
	err := r.db.QueryRowContext(ctx, `SELECT id, name, type FROM elections WHERE id = ?`, id).
		Scan(&e.ID, &e.Name, &e.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("election %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning election: %w", err)
	}
	return &e, nil
}

func (r *SQLiteElectionRepo) List(ctx context.Context) ([]*domain.Election, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, type FROM elections ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing elections: %w", err)
	}
	defer rows.Close()

	elections := []*domain.Election{}
	for rows.Next() {
		var e domain.Election
		if err := rows.Scan(&e.ID, &e.Name, &e.Type); err != nil {
			return nil, fmt.Errorf("scanning election: %w", err)
		}
		elections = append(elections, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating elections: %w", err)
	}
	return elections, nil
}
