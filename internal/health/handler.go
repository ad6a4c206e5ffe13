package health

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"tutorhub/internal/apperror"
	"tutorhub/internal/httputil"
	"tutorhub/internal/metrics"

	"github.com/go-chi/chi/v5"
)

// Pinger is satisfied by *bun.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	message string
	count   atomic.Int64
	db      Pinger
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewHandler(message string, db Pinger, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		message: message,
		db:      db,
		logger:  logger,
		metrics: m,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.Health)
	router.Get("/ready", h.Ready)
}

type ReadyResponse struct {
	Status string `json:"status"`
}

// Health reports how many times it was called before this request.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	n := h.count.Add(1) - 1
	h.metrics.RecordHealthCheck(r.Context())

	httputil.RespondWithJSON(w, http.StatusOK, fmt.Sprintf("%s %d times", h.message, n))
}

func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		start := time.Now()
		err := h.db.PingContext(r.Context())
		h.metrics.Dependencies.RecordCheck(r.Context(), metrics.DependencyPostgres, time.Since(start), err)
		if err != nil {
			httputil.RespondWithError(w, r, h.logger, apperror.Database(err))
			return
		}
	}

	httputil.RespondWithJSON(w, http.StatusOK, ReadyResponse{Status: "ready"})
}

// Count returns the number of health calls served so far.
func (h *Handler) Count() int64 {
	return h.count.Load()
}
