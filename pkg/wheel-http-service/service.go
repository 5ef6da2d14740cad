package wheel_http_service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/metrics"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/spin"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// WheelSystem is an interface that actor.System implements.
type WheelSystem interface {
	State() (actor.State, error)
	Spin() (spin.Record, error)
	AnimationComplete() (types.Resolution, error)
	Acknowledge() error
	UpdateItems(items []types.Item) error
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type handler struct {
	system WheelSystem
	logger *slog.Logger
}

// NewRouter builds the HTTP API of the wheel.
func NewRouter(system WheelSystem, logger *slog.Logger) http.Handler {
	h := &handler{system: system, logger: logger}

	r := chi.NewRouter()
	r.Use(metrics.Middleware(func(r *http.Request) string {
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			return rctx.RoutePattern()
		}
		return ""
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Route("/wheel", func(r chi.Router) {
		r.Get("/", h.getState)
		r.Post("/spin", h.spin)
		r.Post("/spin/complete", h.complete)
		r.Post("/spin/ack", h.acknowledge)
		r.Put("/items", h.updateItems)
	})
	return r
}

// ListenAndServe serves the HTTP API until ctx is done.
func ListenAndServe(ctx context.Context, system WheelSystem, addr string, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(system, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *handler) getState(w http.ResponseWriter, r *http.Request) {
	state, err := h.system.State()
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

func (h *handler) spin(w http.ResponseWriter, r *http.Request) {
	rec, err := h.system.Spin()
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (h *handler) complete(w http.ResponseWriter, r *http.Request) {
	res, err := h.system.AnimationComplete()
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *handler) acknowledge(w http.ResponseWriter, r *http.Request) {
	if err := h.system.Acknowledge(); err != nil {
		h.respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) updateItems(w http.ResponseWriter, r *http.Request) {
	var req updateItemsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Fields: formatValidationError(err)})
		return
	}

	items := make([]types.Item, 0, len(req.Items))
	for _, row := range req.Items {
		items = append(items, types.Item{Name: row.Name, Quantity: row.Quantity})
	}
	if err := h.system.UpdateItems(items); err != nil {
		h.respondErr(w, err)
		return
	}

	state, err := h.system.State()
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

func (h *handler) respondErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrSpinInProgress),
		errors.Is(err, types.ErrNotSpinning),
		errors.Is(err, types.ErrNotResolved),
		errors.Is(err, types.ErrNothingToDraw):
		status = http.StatusConflict
	case errors.Is(err, types.ErrInvalidItem), errors.Is(err, types.ErrDuplicateItem):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrShutingDown):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError && h.logger != nil {
		h.logger.Error("Request failed.", "error", err)
	}
	respondJSON(w, status, ErrorResponse{Error: err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
