package todos

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/reactor-ui/reactor/pkg/httperr"
)

// API serves the todo store as a JSON REST resource.
type API struct {
	store  *Store
	logger *slog.Logger
}

// NewAPI creates an API over the given store.
func NewAPI(store *Store, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		store:  store,
		logger: logger.With("component", "todos"),
	}
}

// Routes returns a router serving:
//
//	GET    /        list todos
//	POST   /        create a todo
//	GET    /{id}    fetch one todo
//	PUT    /{id}    rename a todo
//	POST   /{id}/toggle  flip done state
//	DELETE /{id}    delete a todo
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", a.handleList)
	r.Post("/", a.handleCreate)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", a.handleGet)
		r.Put("/", a.handleRename)
		r.Post("/toggle", a.handleToggle)
		r.Delete("/", a.handleDelete)
	})
	return r
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("response encode failed", "error", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	var he *httperr.Error
	if !errors.As(err, &he) {
		switch {
		case errors.Is(err, ErrNotFound):
			he = httperr.NotFound()
		case errors.Is(err, ErrEmptyTitle):
			he = httperr.UnprocessableEntity("title must not be empty")
		default:
			a.logger.Error("request failed", "error", err)
			he = httperr.Internal(err)
		}
	}
	he.Write(w)
}

func todoID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, httperr.BadRequestf("invalid todo id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.store.List())
}

type createRequest struct {
	Title string `json:"title"`
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, httperr.BadRequest(err))
		return
	}

	t, err := a.store.Add(req.Title)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, t)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	t, err := a.store.Get(id)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, t)
}

func (a *API) handleRename(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, httperr.BadRequest(err))
		return
	}

	t, err := a.store.Rename(id, req.Title)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, t)
}

func (a *API) handleToggle(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	t, err := a.store.Toggle(id)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, t)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.store.Delete(id); err != nil {
		a.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
