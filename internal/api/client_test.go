package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sufragio/internal/config"
	"github.com/alexanderramin/sufragio/internal/domain"
)

func testClient(t *testing.T, h http.HandlerFunc) (*Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	obs := &recordingObserver{}
	cfg := config.Defaults().API
	cfg.BaseURL = srv.URL
	return New(cfg, obs), obs
}

type recordingObserver struct {
	mu     sync.Mutex
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(_ context.Context, e CallEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) all() []CallEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]CallEvent(nil), o.events...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

const ballotJSON = `{
  "id": 7, "sectionId": 4, "electionId": 2, "state": "active",
  "structure": [
    {"positionId": 1, "positionName": "Presidente", "candidacies": [
      {"partyId": 3, "partyName": "Partido Azul", "partyColor": "#0033cc", "partySymbol": "estrella",
       "candidates": [
         {"id": 10, "firstName": "Ana", "lastNames": "Pérez", "photoRef": "candidates/ana.png"},
         {"id": 11, "firstName": "Luis", "lastNames": "Gómez"}
       ]}
    ]},
    {"positionId": 2, "positionName": "Alcalde", "candidacies": []}
  ]
}`

func TestClient_GenerateBallot_Success(t *testing.T) {
	client, obs := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ballots/generate-by-section/4/2", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, ballotJSON)
	})

	b, err := client.GenerateBallot(context.Background(), domain.BallotKey{SectionID: 4, ElectionID: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(7), b.ID)
	assert.Equal(t, domain.StateActive, b.State)
	require.Len(t, b.Structure, 2)
	assert.Equal(t, "Presidente", b.Structure[0].PositionName)
	require.Len(t, b.Structure[0].Candidacies, 1)
	assert.Len(t, b.Structure[0].Candidacies[0].Candidates, 2)
	assert.Equal(t, "Alcalde", b.Structure[1].PositionName)
	assert.NotNil(t, b.Structure[1].Candidacies)
	assert.Empty(t, b.Structure[1].Candidacies)

	events := obs.all()
	require.Len(t, events, 1)
	assert.Equal(t, "ballots.generate", events[0].Op)
	assert.Equal(t, http.StatusOK, events[0].Status)
	assert.Empty(t, events[0].ErrorCode)
}

func TestClient_GenerateBallot_IncompleteKeySendsNothing(t *testing.T) {
	var calls atomic.Int32
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := client.GenerateBallot(context.Background(), domain.BallotKey{SectionID: 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_GenerateBallot_PreconditionFailure(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": "section 9 is inactive"})
	})

	_, err := client.GenerateBallot(context.Background(), domain.BallotKey{SectionID: 9, ElectionID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
	assert.ErrorIs(t, err, ErrValidation)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "section 9 is inactive", apiErr.Message)
}

func TestClient_ServerErrorFallsBackToStatusText(t *testing.T) {
	client, obs := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "<html>boom</html>")
	})

	_, err := client.ListBallots(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
	assert.NotErrorIs(t, err, ErrNetwork)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Internal Server Error", apiErr.Message)

	events := obs.all()
	require.Len(t, events, 1)
	assert.Equal(t, "REMOTE", events[0].ErrorCode)
	assert.Equal(t, http.StatusInternalServerError, events[0].Status)
}

func TestClient_FindBallot_NotFound(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ballots/by-section-election/4/2", r.URL.Path)
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "ballot not found"})
	})

	_, err := client.FindBallot(context.Background(), domain.BallotKey{SectionID: 4, ElectionID: 2})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "NOT_FOUND", Code(err))
}

func TestClient_MalformedPayloadFailsClosed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<<<`},
		{"wrong type", `{"id":"seven","electionId":2,"state":"active","structure":[]}`},
		{"missing structure", `{"id":7,"electionId":2,"state":"active"}`},
		{"unknown state", `{"id":7,"electionId":2,"state":"archived","structure":[]}`},
		{"position without name", `{"id":7,"electionId":2,"state":"active","structure":[{"positionId":1,"candidacies":[]}]}`},
		{"empty body", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			})

			b, err := client.GenerateBallot(context.Background(), domain.BallotKey{SectionID: 1, ElectionID: 2})
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrRemote)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestClient_ListBallots_NullFailsClosed(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `null`)
	})

	ballots, err := client.ListBallots(context.Background())
	assert.Nil(t, ballots)
	assert.ErrorIs(t, err, ErrRemote)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestClient_ListBallots_EmptyArray(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})

	ballots, err := client.ListBallots(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ballots)
	assert.Empty(t, ballots)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := config.Defaults().API
	cfg.BaseURL = srv.URL
	cfg.TimeoutMs = 30
	client := New(cfg, NoopObserver{})

	_, err := client.ListSections(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, "TIMEOUT", Code(err))
}

func TestClient_Unreachable(t *testing.T) {
	cfg := config.Defaults().API
	cfg.BaseURL = "http://127.0.0.1:1" // nothing listening
	client := New(cfg, NoopObserver{})

	_, err := client.ListElections(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, ErrRemote)
}

func TestClient_NoRetries(t *testing.T) {
	var calls atomic.Int32
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListPositions(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_ListSectionsAndElections(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sections":
			io.WriteString(w, `[{"id":4,"name":"Centro","state":"active","boundaryPoints":[
			  {"latitude":-0.2,"longitude":-78.5,"order":2},
			  {"latitude":-0.1,"longitude":-78.5,"order":1},
			  {"latitude":-0.1,"longitude":-78.4,"order":3}]}]`)
		case "/elections/2":
			io.WriteString(w, `{"id":2,"name":"Generales 2027","type":"general"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	sections, err := client.ListSections(context.Background())
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Centro", sections[0].Name)
	assert.True(t, sections[0].IsClosed())

	e, err := client.GetElection(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Generales 2027", e.Name)
}
