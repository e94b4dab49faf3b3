package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/sufragio/internal/db"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// SQLitePositionRepo implements PositionRepo.
type SQLitePositionRepo struct {
	db db.DBTX
}

func NewSQLitePositionRepo(conn db.DBTX) *SQLitePositionRepo {
	return &SQLitePositionRepo{db: conn}
}

const positionColumns = `id, name, description, state, section_id`

func (r *SQLitePositionRepo) Create(ctx context.Context, p *domain.Position) error {
	if p.State == "" {
		p.State = domain.StateActive
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO positions (name, description, state, section_id) VALUES (?, ?, ?, ?)`,
		p.Name, p.Description, string(p.State), nullableID(p.SectionID))
	if err != nil {
		return fmt.Errorf("inserting position: %w", err)
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading position id: %w", err)
	}
	return nil
}

func (r *SQLitePositionRepo) GetByID(ctx context.Context, id int64) (*domain.Position, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+positionColumns+` FROM positions WHERE id = ?`, id)
	p, err := scanPosition(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("position %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning position: %w", err)
	}
	return p, nil
}

func (r *SQLitePositionRepo) List(ctx context.Context) ([]*domain.Position, error) {
	return r.query(ctx, `SELECT `+positionColumns+` FROM positions ORDER BY id`)
}

// ListBySection returns every position bound to the section in id order,
// regardless of state.
func (r *SQLitePositionRepo) ListBySection(ctx context.Context, sectionID int64) ([]*domain.Position, error) {
	return r.query(ctx, `SELECT `+positionColumns+` FROM positions WHERE section_id = ? ORDER BY id`, sectionID)
}

func (r *SQLitePositionRepo) Update(ctx context.Context, p *domain.Position) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE positions SET name = ?, description = ?, state = ?, section_id = ? WHERE id = ?`,
		p.Name, p.Description, string(p.State), nullableID(p.SectionID), p.ID)
	if err != nil {
		return fmt.Errorf("updating position: %w", err)
	}
	return requireAffected(res, "position", p.ID)
}

func (r *SQLitePositionRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM positions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting position: %w", err)
	}
	return requireAffected(res, "position", id)
}

func (r *SQLitePositionRepo) query(ctx context.Context, query string, args ...any) ([]*domain.Position, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing positions: %w", err)
	}
	defer rows.Close()

	positions := []*domain.Position{}
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating positions: %w", err)
	}
	return positions, nil
}

func scanPosition(s scanner) (*domain.Position, error) {
	var p domain.Position
	var state string
	var sectionID sql.NullInt64
	if err := s.Scan(&p.ID, &p.Name, &p.Description, &state, &sectionID); err != nil {
		return nil, err
	}
	p.State = domain.EntityState(state)
	p.SectionID = idFromNull(sectionID)
	return &p, nil
}

func requireAffected(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking %s rows: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}
