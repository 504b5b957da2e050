package tools

import (
	"log/slog"
	"net/http"

	"github.com/adbstack/agent-tools/pkg/decode"
	"github.com/adbstack/agent-tools/pkg/handlers"
	"github.com/adbstack/agent-tools/pkg/pagination"
)

// Handler provides HTTP handlers for tool registry and invocation endpoints.
type Handler struct {
	sys        System
	dispatcher *Dispatcher
	registrar  *Registrar
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a tools HTTP handler.
func NewHandler(sys System, dispatcher *Dispatcher, registrar *Registrar, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		dispatcher: dispatcher,
		registrar:  registrar,
		logger:     logger,
		pagination: pagination,
	}
}

// Mount registers tool routes on the provided mux.
func (h *Handler) Mount(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/tools", h.Search)
	mux.HandleFunc("GET /api/tools/{name}", h.Find)
	mux.HandleFunc("POST /api/tools/register", h.RegisterAll)
	mux.HandleFunc("POST /api/tools/{name}/invoke", h.Invoke)
	mux.HandleFunc("DELETE /api/tools/{name}", h.Delete)
}

// Search handles GET /api/tools to retrieve a paginated list of bindings.
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

// Find handles GET /api/tools/{name} to retrieve a single binding.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	binding, err := h.sys.Find(r.Context(), r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, binding)
}

type registerResponse struct {
	Registered []string          `json:"registered"`
	Failed     map[string]string `json:"failed,omitempty"`
}

// RegisterAll handles POST /api/tools/register to re-provision the catalog.
// The response reports per-tool failures; a partial failure is not an HTTP error.
func (h *Handler) RegisterAll(w http.ResponseWriter, r *http.Request) {
	report := h.registrar.RegisterAll(r.Context())

	resp := registerResponse{Registered: report.Registered}
	if len(report.Failed) > 0 {
		resp.Failed = make(map[string]string, len(report.Failed))
		for name, err := range report.Failed {
			resp.Failed[name] = err.Error()
		}
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Invoke handles POST /api/tools/{name}/invoke to execute a tool. The
// response is always a result envelope; operation failures are reported
// through its status field, not transport errors.
func (h *Handler) Invoke(w http.ResponseWriter, r *http.Request) {
	binding, err := h.sys.Find(r.Context(), r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	inv, err := decode.JSON[Invocation](r.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result := h.dispatcher.Dispatch(r.Context(), binding.TargetOperation, inv)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /api/tools/{name} to remove a binding.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Delete(r.Context(), r.PathValue("name")); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
