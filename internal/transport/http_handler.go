// Package transport exposes the HTTP query surface.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/tainttrace-backend/internal/query"
	"github.com/goodnatureofminers/tainttrace-backend/internal/scanner"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// StatusProvider exposes the scanner's runtime view.
type StatusProvider interface {
	Status() scanner.Status
}

// Handler serves the query endpoints consumed by the external HTTP layer.
type Handler struct {
	query  *query.Service
	status StatusProvider
	logger *zap.Logger
}

// NewHandler returns a Handler instance.
func NewHandler(q *query.Service, status StatusProvider, logger *zap.Logger) *Handler {
	return &Handler{
		query:  q,
		status: status,
		logger: logger.Named("http"),
	}
}

// Router builds the route table with CORS applied.
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /check/{address}", h.handleCheck)
	mux.HandleFunc("GET /sync-status", h.handleSyncStatus)
	mux.HandleFunc("GET /health", h.handleHealth)
	return cors.Default().Handler(mux)
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	if address == "" {
		writeError(w, http.StatusBadRequest, "address is required")
		return
	}

	res, err := h.query.Check(r.Context(), address)
	if errors.Is(err, query.ErrTimeout) {
		writeError(w, http.StatusServiceUnavailable, "lookup timed out")
		return
	}
	if err != nil {
		h.logger.Error("check failed", zap.String("address", address), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleSyncStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.status.Status())
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}

// NewServer wraps the handler in an http.Server with conservative
// timeouts.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
