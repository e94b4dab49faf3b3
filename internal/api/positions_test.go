package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sufragio/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestClient_CreatePosition_SendsBody(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/positions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Alcalde", body["name"])
		assert.Equal(t, float64(4), body["sectionId"])
		assert.NotContains(t, body, "description")

		writeJSON(w, http.StatusCreated, map[string]any{
			"id": 12, "name": "Alcalde", "description": "", "state": "active", "sectionId": 4,
		})
	})

	sectionID := int64(4)
	p, err := client.CreatePosition(context.Background(), domain.PositionInput{
		Name:      strPtr("Alcalde"),
		SectionID: &sectionID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), p.ID)
	assert.Equal(t, domain.StateActive, p.State)
}

func TestClient_CreatePosition_MissingNameNeverSent(t *testing.T) {
	var calls atomic.Int32
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := client.CreatePosition(context.Background(), domain.PositionInput{Description: strPtr("x")})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_UpdatePosition_Partial(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/positions/12", r.URL.Path)

		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"state":"inactive"}`, string(raw))

		writeJSON(w, http.StatusOK, map[string]any{
			"id": 12, "name": "Alcalde", "state": "inactive", "sectionId": 4,
		})
	})

	st := domain.StateInactive
	p, err := client.UpdatePosition(context.Background(), 12, domain.PositionInput{State: &st})
	require.NoError(t, err)
	assert.Equal(t, domain.StateInactive, p.State)
}

func TestClient_UpdatePosition_NotFound(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "position 99 not found"})
	})

	_, err := client.UpdatePosition(context.Background(), 99, domain.PositionInput{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_DeletePosition(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/positions/12", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeletePosition(context.Background(), 12))
	assert.ErrorIs(t, client.DeletePosition(context.Background(), 0), ErrValidation)
}
