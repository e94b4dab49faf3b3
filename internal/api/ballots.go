package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alexanderramin/sufragio/internal/contract"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// ListBallots returns every generated ballot.
func (c *Client) ListBallots(ctx context.Context) ([]*domain.Ballot, error) {
	const op = "ballots.list"
	resp, err := c.do(ctx, op, http.MethodGet, "/ballots", nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[contract.Ballot](op, resp)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Ballot, 0, len(items))
	for _, b := range items {
		out = append(out, b.ToDomain())
	}
	return out, nil
}

// GenerateBallot asks the API to assemble, persist and return the ballot
// for the key. The call has a server-side effect even though it is a GET.
// Regenerating an existing key replaces the stored ballot.
func (c *Client) GenerateBallot(ctx context.Context, key domain.BallotKey) (*domain.Ballot, error) {
	const op = "ballots.generate"
	if !key.Complete() {
		return nil, validationError(op, "section and election are required")
	}
	path := fmt.Sprintf("/ballots/generate-by-section/%d/%d", key.SectionID, key.ElectionID)
	return c.getBallot(ctx, op, path)
}

// FindBallot looks up the stored ballot for the key. It returns an error
// matching ErrNotFound when none has been generated.
func (c *Client) FindBallot(ctx context.Context, key domain.BallotKey) (*domain.Ballot, error) {
	const op = "ballots.find"
	if !key.Complete() {
		return nil, validationError(op, "section and election are required")
	}
	path := fmt.Sprintf("/ballots/by-section-election/%d/%d", key.SectionID, key.ElectionID)
	return c.getBallot(ctx, op, path)
}

func (c *Client) getBallot(ctx context.Context, op, path string) (*domain.Ballot, error) {
	resp, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	b, err := decodeOne[contract.Ballot](op, resp)
	if err != nil {
		return nil, err
	}
	return b.ToDomain(), nil
}
