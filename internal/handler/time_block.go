package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pulsedash/pulse/internal/ctxkeys"
	"github.com/pulsedash/pulse/internal/service"
	"github.com/pulsedash/pulse/internal/validation"
)

type TimeBlockHandler struct {
	timeBlockService *service.TimeBlockService
}

func NewTimeBlockHandler(timeBlockService *service.TimeBlockService) *TimeBlockHandler {
	return &TimeBlockHandler{
		timeBlockService: timeBlockService,
	}
}

// List returns time blocks, optionally restricted to one day via
// ?date=2025-06-16.
func (h *TimeBlockHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	dateParam := r.URL.Query().Get("date")
	if dateParam != "" {
		day, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			respondError(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
			return
		}

		blocks, err := h.timeBlockService.BlocksByDay(user.ID, day)
		if err != nil {
			slog.Error("failed to get time blocks", "error", err, "user_id", user.ID)
			respondError(w, http.StatusInternalServerError, "failed to load time blocks")
			return
		}

		respondJSON(w, http.StatusOK, blocks)
		return
	}

	blocks, err := h.timeBlockService.Blocks(user.ID)
	if err != nil {
		slog.Error("failed to get time blocks", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load time blocks")
		return
	}

	respondJSON(w, http.StatusOK, blocks)
}

func (h *TimeBlockHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		Title     string    `json:"title"`
		StartTime string    `json:"startTime"`
		Duration  int       `json:"duration"`
		Color     string    `json:"color"`
		Date      time.Time `json:"date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Duration <= 0 {
		respondError(w, http.StatusBadRequest, "duration must be positive")
		return
	}

	block, err := h.timeBlockService.Create(user.ID, req.Title, req.StartTime, req.Duration, req.Color, req.Date)
	if err != nil {
		slog.Error("failed to create time block", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to create time block")
		return
	}

	respondJSON(w, http.StatusCreated, block)
}
