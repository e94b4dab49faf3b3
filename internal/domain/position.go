package domain

import (
	"fmt"
	"strings"
)

// Position is an electable office ("cargo") owned by exactly one section.
// The single-owner rule is enforced by the remote API.
type Position struct {
	ID          int64
	Name        string
	Description string
	State       EntityState
	SectionID   int64
}

// PositionInput carries the fields of a create or partial update.
// Nil fields are left out of the request.
type PositionInput struct {
	Name        *string
	Description *string
	State       *EntityState
	SectionID   *int64
}

// ValidateCreate checks the fields required to create a position.
func (in PositionInput) ValidateCreate() error {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return in.validateCommon()
}

// ValidateUpdate checks a partial update. At least one field must be set.
func (in PositionInput) ValidateUpdate() error {
	if in.IsEmpty() {
		return fmt.Errorf("nothing to update")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("name cannot be blank")
	}
	return in.validateCommon()
}

// IsEmpty reports whether no field is set.
func (in PositionInput) IsEmpty() bool {
	return in.Name == nil && in.Description == nil && in.State == nil && in.SectionID == nil
}

func (in PositionInput) validateCommon() error {
	if in.State != nil && !in.State.Valid() {
		return fmt.Errorf("invalid state %q", *in.State)
	}
	if in.SectionID != nil && *in.SectionID <= 0 {
		return fmt.Errorf("section id must be positive")
	}
	return nil
}
