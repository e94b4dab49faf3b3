package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alexanderramin/sufragio/internal/contract"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// ListSections returns every section known to the API.
func (c *Client) ListSections(ctx context.Context) ([]*domain.Section, error) {
	const op = "sections.list"
	resp, err := c.do(ctx, op, http.MethodGet, "/sections", nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[contract.Section](op, resp)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Section, 0, len(items))
	for _, s := range items {
		out = append(out, s.ToDomain())
	}
	return out, nil
}

// GetSection fetches one section including its boundary points.
func (c *Client) GetSection(ctx context.Context, id int64) (*domain.Section, error) {
	const op = "sections.get"
	if id <= 0 {
		return nil, validationError(op, "section id is required")
	}
	resp, err := c.do(ctx, op, http.MethodGet, fmt.Sprintf("/sections/%d", id), nil)
	if err != nil {
		return nil, err
	}
	s, err := decodeOne[contract.Section](op, resp)
	if err != nil {
		return nil, err
	}
	return s.ToDomain(), nil
}
