package compartments

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/adbstack/agent-tools/pkg/handlers"
)

// Handler provides HTTP handlers for compartment resolution.
type Handler struct {
	resolver *Resolver
	logger   *slog.Logger
}

// NewHandler creates a compartments HTTP handler.
func NewHandler(resolver *Resolver, logger *slog.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// Mount registers compartment routes on the provided mux.
func (h *Handler) Mount(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/compartments/resolve", h.Resolve)
}

// Resolve handles GET /api/compartments/resolve?name= to resolve a
// compartment name to its OCID.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("name parameter required"))
		return
	}

	resolution, err := h.resolver.ResolveOCID(r.Context(), name)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resolution)
}
