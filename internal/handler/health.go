package handler

import (
	"log/slog"
	"net/http"

	"github.com/pulsedash/pulse/internal/ctxkeys"
	"github.com/pulsedash/pulse/internal/service"
	"github.com/pulsedash/pulse/internal/validation"
)

type HealthHandler struct {
	healthService *service.HealthService
}

func NewHealthHandler(healthService *service.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

func (h *HealthHandler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	metrics, err := h.healthService.Metrics(user.ID)
	if err != nil {
		slog.Error("failed to get health metrics", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load health metrics")
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}

func (h *HealthHandler) CreateMetric(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		Type  string  `json:"type"`
		Value float64 `json:"value"`
		Unit  string  `json:"unit"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateMetricType(req.Type); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	metric, err := h.healthService.AddMetric(user.ID, req.Type, req.Value, req.Unit)
	if err != nil {
		slog.Error("failed to create health metric", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to create health metric")
		return
	}

	respondJSON(w, http.StatusCreated, metric)
}

func (h *HealthHandler) Score(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	score, err := h.healthService.Score(user.ID)
	if err != nil {
		slog.Error("failed to compute health score", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to compute health score")
		return
	}

	respondJSON(w, http.StatusOK, score)
}
