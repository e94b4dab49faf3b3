// Package sandbox is a local implementation of the electoral REST API
// backed by SQLite. `sufragio serve` runs it so the console can be used
// and tested without the production backend.
package sandbox

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexanderramin/sufragio/internal/contract"
	"github.com/alexanderramin/sufragio/internal/db"
	"github.com/alexanderramin/sufragio/internal/domain"
	"github.com/alexanderramin/sufragio/internal/repository"
	"github.com/alexanderramin/sufragio/internal/service"
)

// Services are the use cases the HTTP handlers delegate to.
type Services struct {
	Catalog   service.CatalogService
	Positions service.PositionService
	Ballots   service.BallotService
}

// NewServices wires SQLite repositories and services over database.
func NewServices(database *sql.DB, observers ...service.UseCaseObserver) Services {
	uow := db.NewSQLiteUnitOfWork(database)
	return Services{
		Catalog: service.NewCatalogService(
			repository.NewSQLiteSectionRepo(database),
			repository.NewSQLiteElectionRepo(database),
		),
		Positions: service.NewPositionService(repository.NewSQLitePositionRepo(database), uow, observers...),
		Ballots:   service.NewBallotService(repository.NewSQLiteBallotRepo(database), uow, observers...),
	}
}

type handlers struct {
	svc    Services
	logger *slog.Logger
}

// NewRouter returns the API routes behind request-id, logging and panic
// recovery middleware.
func NewRouter(svc Services, logger *slog.Logger) http.Handler {
	h := &handlers{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logging(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Route("/sections", func(r chi.Router) {
		r.Get("/", h.listSections)
		r.Get("/{id}", h.getSection)
	})
	r.Route("/elections", func(r chi.Router) {
		r.Get("/", h.listElections)
		r.Get("/{id}", h.getElection)
	})
	r.Route("/positions", func(r chi.Router) {
		r.Get("/", h.listPositions)
		r.Post("/", h.createPosition)
		r.Get("/{id}", h.getPosition)
		r.Put("/{id}", h.updatePosition)
		r.Delete("/{id}", h.deletePosition)
	})
	r.Route("/ballots", func(r chi.Router) {
		r.Get("/", h.listBallots)
		r.Get("/generate-by-section/{sectionId}/{electionId}", h.generateBallot)
		r.Get("/by-section-election/{sectionId}/{electionId}", h.findBallot)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "ruta no encontrada: "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "método no permitido")
	})
	return r
}

// ── Sections and elections ───────────────────────────────────────────────────

func (h *handlers) listSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.svc.Catalog.ListSections(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]contract.Section, 0, len(sections))
	for _, s := range sections {
		out = append(out, contract.SectionFromDomain(s))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) getSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	s, err := h.svc.Catalog.GetSection(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.SectionFromDomain(s))
}

func (h *handlers) listElections(w http.ResponseWriter, r *http.Request) {
	elections, err := h.svc.Catalog.ListElections(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]contract.Election, 0, len(elections))
	for _, e := range elections {
		out = append(out, contract.ElectionFromDomain(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) getElection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	e, err := h.svc.Catalog.GetElection(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.ElectionFromDomain(e))
}

// ── Positions ────────────────────────────────────────────────────────────────

func (h *handlers) listPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.svc.Positions.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]contract.Position, 0, len(positions))
	for _, p := range positions {
		out = append(out, contract.PositionFromDomain(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) getPosition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.svc.Positions.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.PositionFromDomain(p))
}

func (h *handlers) createPosition(w http.ResponseWriter, r *http.Request) {
	in, ok := decodePositionRequest(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Positions.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract.PositionFromDomain(p))
}

func (h *handlers) updatePosition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	in, ok := decodePositionRequest(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Positions.Update(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.PositionFromDomain(p))
}

func (h *handlers) deletePosition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Positions.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodePositionRequest(w http.ResponseWriter, r *http.Request) (domain.PositionInput, bool) {
	var req contract.PositionRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo JSON inválido: "+err.Error())
		return domain.PositionInput{}, false
	}
	in, err := req.ToInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return domain.PositionInput{}, false
	}
	return in, true
}

// ── Ballots ──────────────────────────────────────────────────────────────────

func (h *handlers) listBallots(w http.ResponseWriter, r *http.Request) {
	ballots, err := h.svc.Ballots.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]contract.Ballot, 0, len(ballots))
	for _, b := range ballots {
		out = append(out, contract.BallotFromDomain(b))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) generateBallot(w http.ResponseWriter, r *http.Request) {
	key, ok := pathKey(w, r)
	if !ok {
		return
	}
	b, err := h.svc.Ballots.Generate(r.Context(), key)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.BallotFromDomain(b))
}

func (h *handlers) findBallot(w http.ResponseWriter, r *http.Request) {
	key, ok := pathKey(w, r)
	if !ok {
		return
	}
	b, err := h.svc.Ballots.FindByKey(r.Context(), key)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.BallotFromDomain(b))
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("identificador inválido: %q", raw))
		return 0, false
	}
	return id, true
}

func pathKey(w http.ResponseWriter, r *http.Request) (domain.BallotKey, bool) {
	sectionID, ok := pathID(w, r, "sectionId")
	if !ok {
		return domain.BallotKey{}, false
	}
	electionID, ok := pathID(w, r, "electionId")
	if !ok {
		return domain.BallotKey{}, false
	}
	return domain.BallotKey{SectionID: sectionID, ElectionID: electionID}, true
}

// fail maps service and repository errors onto HTTP statuses.
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPrecondition):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("request_id", RequestIDFrom(r.Context())),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "error interno del servidor")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, contract.ErrorBody{Message: msg})
}
