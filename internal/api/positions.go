package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alexanderramin/sufragio/internal/contract"
	"github.com/alexanderramin/sufragio/internal/domain"
)

func (c *Client) ListPositions(ctx context.Context) ([]*domain.Position, error) {
	const op = "positions.list"
	resp, err := c.do(ctx, op, http.MethodGet, "/positions", nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[contract.Position](op, resp)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Position, 0, len(items))
	for _, p := range items {
		out = append(out, p.ToDomain())
	}
	return out, nil
}

func (c *Client) GetPosition(ctx context.Context, id int64) (*domain.Position, error) {
	const op = "positions.get"
	if id <= 0 {
		return nil, validationError(op, "position id is required")
	}
	resp, err := c.do(ctx, op, http.MethodGet, positionPath(id), nil)
	if err != nil {
		return nil, err
	}
	return decodePosition(op, resp)
}

// CreatePosition validates the input locally before sending it. A missing
// name never reaches the API.
func (c *Client) CreatePosition(ctx context.Context, in domain.PositionInput) (*domain.Position, error) {
	const op = "positions.create"
	if err := in.ValidateCreate(); err != nil {
		return nil, validationError(op, err.Error())
	}
	resp, err := c.do(ctx, op, http.MethodPost, "/positions", contract.NewPositionRequest(in))
	if err != nil {
		return nil, err
	}
	return decodePosition(op, resp)
}

// UpdatePosition sends a partial update. Nil input fields are omitted.
func (c *Client) UpdatePosition(ctx context.Context, id int64, in domain.PositionInput) (*domain.Position, error) {
	const op = "positions.update"
	if id <= 0 {
		return nil, validationError(op, "position id is required")
	}
	if err := in.ValidateUpdate(); err != nil {
		return nil, validationError(op, err.Error())
	}
	resp, err := c.do(ctx, op, http.MethodPut, positionPath(id), contract.NewPositionRequest(in))
	if err != nil {
		return nil, err
	}
	return decodePosition(op, resp)
}

func (c *Client) DeletePosition(ctx context.Context, id int64) error {
	const op = "positions.delete"
	if id <= 0 {
		return validationError(op, "position id is required")
	}
	_, err := c.do(ctx, op, http.MethodDelete, positionPath(id), nil)
	return err
}

func positionPath(id int64) string {
	return fmt.Sprintf("/positions/%d", id)
}

func decodePosition(op string, resp *rawResponse) (*domain.Position, error) {
	p, err := decodeOne[contract.Position](op, resp)
	if err != nil {
		return nil, err
	}
	return p.ToDomain(), nil
}
