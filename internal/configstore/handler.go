package configstore

import (
	"log/slog"
	"net/http"

	"github.com/adbstack/agent-tools/pkg/decode"
	"github.com/adbstack/agent-tools/pkg/handlers"
	"github.com/adbstack/agent-tools/pkg/pagination"
)

// Handler provides HTTP handlers for configuration entry operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a configuration store HTTP handler.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger,
		pagination: pagination,
	}
}

// Mount registers configuration routes on the provided mux.
func (h *Handler) Mount(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/config", h.Search)
	mux.HandleFunc("GET /api/config/{agent}", h.List)
	mux.HandleFunc("GET /api/config/{agent}/{key}", h.Get)
	mux.HandleFunc("PUT /api/config/{agent}/{key}", h.Set)
}

// Search handles GET /api/config to retrieve a paginated list of entries.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.Search(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List handles GET /api/config/{agent} to retrieve every entry owned by an agent.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.sys.List(r.Context(), r.PathValue("agent"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, entries)
}

// Get handles GET /api/config/{agent}/{key} to retrieve a single entry.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.sys.Get(r.Context(), r.PathValue("agent"), r.PathValue("key"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, entry)
}

type setRequest struct {
	Value string `json:"value"`
}

// Set handles PUT /api/config/{agent}/{key} to create or replace an entry.
func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	req, err := decode.JSON[setRequest](r.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	entry, err := h.sys.Set(r.Context(), SetCommand{
		Key:   r.PathValue("key"),
		Value: req.Value,
		Agent: r.PathValue("agent"),
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, entry)
}
