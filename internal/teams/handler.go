package teams

import (
	"log/slog"
	"net/http"

	"github.com/adbstack/agent-tools/pkg/handlers"
)

// Handler provides read-only HTTP handlers for definitions. Writes go
// through the installer, never through the API.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a definitions HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Mount registers definition routes on the provided mux.
func (h *Handler) Mount(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/tasks", h.Tasks)
	mux.HandleFunc("GET /api/agents", h.Agents)
	mux.HandleFunc("GET /api/teams", h.Teams)
	mux.HandleFunc("GET /api/teams/{name}", h.FindTeam)
}

// Tasks handles GET /api/tasks to list task definitions.
func (h *Handler) Tasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.sys.Tasks(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, tasks)
}

// Agents handles GET /api/agents to list agent definitions.
func (h *Handler) Agents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.sys.Agents(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, agents)
}

// Teams handles GET /api/teams to list team definitions.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.sys.Teams(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, teams)
}

// FindTeam handles GET /api/teams/{name} to retrieve a single team.
func (h *Handler) FindTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.sys.FindTeam(r.Context(), r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, team)
}
