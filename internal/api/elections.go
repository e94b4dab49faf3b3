package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alexanderramin/sufragio/internal/contract"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// ListElections returns every election known to the API.
func (c *Client) ListElections(ctx context.Context) ([]*domain.Election, error) {
	const op = "elections.list"
	resp, err := c.do(ctx, op, http.MethodGet, "/elections", nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[contract.Election](op, resp)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Election, 0, len(items))
	for _, e := range items {
		out = append(out, e.ToDomain())
	}
	return out, nil
}

func (c *Client) GetElection(ctx context.Context, id int64) (*domain.Election, error) {
	const op = "elections.get"
	if id <= 0 {
		return nil, validationError(op, "election id is required")
	}
	resp, err := c.do(ctx, op, http.MethodGet, fmt.Sprintf("/elections/%d", id), nil)
	if err != nil {
		return nil, err
	}
	e, err := decodeOne[contract.Election](op, resp)
	if err != nil {
		return nil, err
	}
	return e.ToDomain(), nil
}
