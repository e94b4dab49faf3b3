package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sufragio/internal/db"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// SQLiteCandidateRepo implements CandidateRepo.
type SQLiteCandidateRepo struct {
	db db.DBTX
}

func NewSQLiteCandidateRepo(conn db.DBTX) *SQLiteCandidateRepo {
	return &SQLiteCandidateRepo{db: conn}
}

func (r *SQLiteCandidateRepo) Create(ctx context.Context, c *CandidateRecord) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO candidates (first_name, last_names, photo_ref, party_id, position_id, election_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.FirstName, c.LastNames, c.PhotoRef, c.PartyID, c.PositionID, c.ElectionID)
	if err != nil {
		return fmt.Errorf("inserting candidate: %w", err)
	}
	if c.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading candidate id: %w", err)
	}
	return nil
}

func (r *SQLiteCandidateRepo) ListForBallot(ctx context.Context, key domain.BallotKey) ([]BallotCandidate, error) {
	query := `SELECT c.position_id, p.id, p.name, p.color, p.symbol,
			c.id, c.first_name, c.last_names, c.photo_ref
		FROM candidates c
		JOIN parties p ON p.id = c.party_id
		JOIN positions pos ON pos.id = c.position_id
		WHERE c.election_id = ? AND pos.section_id = ?
		ORDER BY c.position_id, p.id, c.id`
	rows, err := r.db.QueryContext(ctx, query, key.ElectionID, key.SectionID)
	if err != nil {
		return nil, fmt.Errorf("listing ballot candidates: %w", err)
	}
	defer rows.Close()

	var out []BallotCandidate
	for rows.Next() {
		var bc BallotCandidate
		if err := rows.Scan(
			&bc.PositionID,
			&bc.Party.ID, &bc.Party.Name, &bc.Party.Color, &bc.Party.Symbol,
			&bc.Candidate.ID, &bc.Candidate.FirstName, &bc.Candidate.LastNames, &bc.Candidate.PhotoRef,
		); err != nil {
			return nil, fmt.Errorf("scanning ballot candidate: %w", err)
		}
		out = append(out, bc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ballot candidates: %w", err)
	}
	return out, nil
}
