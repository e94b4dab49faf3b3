package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSection_OrderedBoundary(t *testing.T) {
	s := &Section{
		ID:   4,
		Name: "Distrito 4",
		BoundaryPoints: []BoundaryPoint{
			{Latitude: -17.39, Longitude: -66.15, Order: 3},
			{Latitude: -17.38, Longitude: -66.16, Order: 1},
			{Latitude: -17.40, Longitude: -66.17, Order: 2},
		},
	}

	got := s.OrderedBoundary()

	assert.Equal(t, []int{1, 2, 3}, []int{got[0].Order, got[1].Order, got[2].Order})
	// The section itself is untouched.
	assert.Equal(t, 3, s.BoundaryPoints[0].Order)
}

func TestSection_IsClosed(t *testing.T) {
	pt := BoundaryPoint{}
	assert.False(t, (&Section{}).IsClosed())
	assert.False(t, (&Section{BoundaryPoints: []BoundaryPoint{pt, pt}}).IsClosed())
	assert.True(t, (&Section{BoundaryPoints: []BoundaryPoint{pt, pt, pt}}).IsClosed())
}
