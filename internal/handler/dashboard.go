package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pulsedash/pulse/internal/ctxkeys"
	"github.com/pulsedash/pulse/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Overview returns the full dashboard payload in one response.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	overview, err := h.dashboardService.Overview(user.ID, time.Now())
	if err != nil {
		slog.Error("failed to build dashboard", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	respondJSON(w, http.StatusOK, overview)
}
