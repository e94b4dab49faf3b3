package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/sufragio/internal/contract"
	"github.com/alexanderramin/sufragio/internal/db"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// SQLiteBallotRepo implements BallotRepo. The structure is stored as the
// JSON wire encoding so it is served back byte-for-byte stable.
type SQLiteBallotRepo struct {
	db db.DBTX
}

func NewSQLiteBallotRepo(conn db.DBTX) *SQLiteBallotRepo {
	return &SQLiteBallotRepo{db: conn}
}

const ballotColumns = `id, section_id, election_id, state, structure`

func (r *SQLiteBallotRepo) Upsert(ctx context.Context, b *domain.Ballot) error {
	if b.State == "" {
		b.State = domain.StateActive
	}
	structure, err := json.Marshal(contract.BallotFromDomain(b).Structure)
	if err != nil {
		return fmt.Errorf("encoding ballot structure: %w", err)
	}
	now := nowUTC()
	query := `INSERT INTO ballots (section_id, election_id, state, structure, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(section_id, election_id) DO UPDATE
		SET state = excluded.state, structure = excluded.structure, updated_at = excluded.updated_at
		RETURNING id`
	err = r.db.QueryRowContext(ctx, query,
		b.SectionID, b.ElectionID, string(b.State), string(structure), now, now,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("upserting ballot: %w", err)
	}
	return nil
}

func (r *SQLiteBallotRepo) GetByID(ctx context.Context, id int64) (*domain.Ballot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+ballotColumns+` FROM ballots WHERE id = ?`, id)
	return r.one(row, fmt.Sprintf("ballot %d", id))
}

func (r *SQLiteBallotRepo) GetByKey(ctx context.Context, key domain.BallotKey) (*domain.Ballot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+ballotColumns+` FROM ballots WHERE section_id = ? AND election_id = ?`,
		key.SectionID, key.ElectionID)
	return r.one(row, fmt.Sprintf("ballot for section %d and election %d", key.SectionID, key.ElectionID))
}

func (r *SQLiteBallotRepo) List(ctx context.Context) ([]*domain.Ballot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+ballotColumns+` FROM ballots ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing ballots: %w", err)
	}
	defer rows.Close()

	ballots := []*domain.Ballot{}
	for rows.Next() {
		b, err := scanBallot(rows)
		if err != nil {
			return nil, err
		}
		ballots = append(ballots, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ballots: %w", err)
	}
	return ballots, nil
}

func (r *SQLiteBallotRepo) one(row *sql.Row, what string) (*domain.Ballot, error) {
	b, err := scanBallot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func scanBallot(s scanner) (*domain.Ballot, error) {
	var wire contract.Ballot
	var structure string
	if err := s.Scan(&wire.ID, &wire.SectionID, &wire.ElectionID, &wire.State, &structure); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning ballot: %w", err)
	}
	if err := json.Unmarshal([]byte(structure), &wire.Structure); err != nil {
		return nil, fmt.Errorf("decoding ballot %d structure: %w", wire.ID, err)
	}
	return wire.ToDomain(), nil
}
