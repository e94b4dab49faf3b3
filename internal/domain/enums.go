package domain

import (
	"fmt"
	"strings"
)

// EntityState is the lifecycle flag shared by positions and ballots.
type EntityState string

const (
	StateActive   EntityState = "active"
	StateInactive EntityState = "inactive"
)

// ValidEntityStates is the canonical set of accepted state strings.
var ValidEntityStates = map[string]bool{
	"active": true, "inactive": true,
}

// Valid reports whether s is one of the known states.
func (s EntityState) Valid() bool {
	return ValidEntityStates[string(s)]
}

// Label returns the Spanish label used across the console.
func (s EntityState) Label() string {
	switch s {
	case StateActive:
		return "Activo"
	case StateInactive:
		return "Inactivo"
	default:
		return string(s)
	}
}

// ParseEntityState parses a user-supplied state. The Spanish forms
// ("activo", "inactivo") are accepted as aliases.
func ParseEntityState(s string) (EntityState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active", "activo":
		return StateActive, nil
	case "inactive", "inactivo":
		return StateInactive, nil
	default:
		return "", fmt.Errorf("unknown state %q (use active or inactive)", s)
	}
}
