package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/sufragio/internal/db"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// SQLiteSectionRepo implements SectionRepo.
type SQLiteSectionRepo struct {
	db db.DBTX
}

func NewSQLiteSectionRepo(conn db.DBTX) *SQLiteSectionRepo {
	return &SQLiteSectionRepo{db: conn}
}

// Create inserts the section and its boundary points, assigning s.ID.
func (r *SQLiteSectionRepo) Create(ctx context.Context, s *domain.Section) error {
	if s.State == "" {
		s.State = domain.StateActive
	}
	res, err := r.db.ExecContext(ctx, `INSERT INTO sections (name, state) VALUES (?, ?)`, s.Name, string(s.State))
	if err != nil {
		return fmt.Errorf("inserting section: %w", err)
	}
	if s.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading section id: %w", err)
	}
	for i, p := range s.BoundaryPoints {
		order := p.Order
		if order == 0 {
			order = i + 1
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO boundary_points (section_id, seq, latitude, longitude) VALUES (?, ?, ?, ?)`,
			s.ID, order, p.Latitude, p.Longitude); err != nil {
			return fmt.Errorf("inserting boundary point %d: %w", order, err)
		}
	}
	return nil
}

func (r *SQLiteSectionRepo) GetByID(ctx context.Context, id int64) (*domain.Section, error) {
	var s domain.Section
	var state string
	err := r.db.QueryRowContext(ctx, `SELECT id, name, state FROM sections WHERE id = ?`, id).
		Scan(&s.ID, &s.Name, &state)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("section %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning section: %w", err)
	}
	s.State = domain.EntityState(state)

	points, err := r.boundary(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	s.BoundaryPoints = points[id]
	if s.BoundaryPoints == nil {
		s.BoundaryPoints = []domain.BoundaryPoint{}
	}
	return &s, nil
}

func (r *SQLiteSectionRepo) List(ctx context.Context) ([]*domain.Section, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, state FROM sections ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	sections := []*domain.Section{}
	ids := []int64{}
	for rows.Next() {
		var s domain.Section
		var state string
		if err := rows.Scan(&s.ID, &s.Name, &state); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		s.State = domain.EntityState(state)
		sections = append(sections, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	rows.Close()

	points, err := r.boundary(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range sections {
		s.BoundaryPoints = points[s.ID]
		if s.BoundaryPoints == nil {
			s.BoundaryPoints = []domain.BoundaryPoint{}
		}
	}
	return sections, nil
}

// boundary loads the ordered boundary points of the given sections.
func (r *SQLiteSectionRepo) boundary(ctx context.Context, ids []int64) (map[int64][]domain.BoundaryPoint, error) {
	out := make(map[int64][]domain.BoundaryPoint, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT section_id, seq, latitude, longitude FROM boundary_points ORDER BY section_id, seq`
	var args []any
	if len(ids) == 1 {
		query = `SELECT section_id, seq, latitude, longitude FROM boundary_points WHERE section_id = ? ORDER BY seq`
		args = append(args, ids[0])
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing boundary points: %w", err)
	}
	defer rows.Close()

	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for rows.Next() {
		var sectionID int64
		var p domain.BoundaryPoint
		if err := rows.Scan(&sectionID, &p.Order, &p.Latitude, &p.Longitude); err != nil {
			return nil, fmt.Errorf("scanning boundary point: %w", err)
		}
		if want[sectionID] {
			out[sectionID] = append(out[sectionID], p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating boundary points: %w", err)
	}
	return out, nil
}
