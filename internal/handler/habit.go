package handler

import (
	"log/slog"
	"net/http"

	"github.com/pulsedash/pulse/internal/ctxkeys"
	"github.com/pulsedash/pulse/internal/service"
	"github.com/pulsedash/pulse/internal/validation"
)

type HabitHandler struct {
	habitService *service.HabitService
}

func NewHabitHandler(habitService *service.HabitService) *HabitHandler {
	return &HabitHandler{
		habitService: habitService,
	}
}

func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	habits, err := h.habitService.Habits(user.ID)
	if err != nil {
		slog.Error("failed to get habits", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load habits")
		return
	}

	respondJSON(w, http.StatusOK, habits)
}

func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		Name        string `json:"name"`
		Emoji       string `json:"emoji"`
		Color       string `json:"color"`
		Type        string `json:"type"`
		TargetValue int    `json:"targetValue"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateName(req.Name); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidateHabitType(req.Type); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	habit, err := h.habitService.Create(user.ID, req.Name, req.Emoji, req.Color, req.Type, req.TargetValue)
	if err != nil {
		slog.Error("failed to create habit", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to create habit")
		return
	}

	respondJSON(w, http.StatusCreated, habit)
}

func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	habitID := r.PathValue("id")

	var update service.HabitUpdate
	if err := decodeJSON(r, &update); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if update.Name != nil {
		if err := validation.ValidateName(*update.Name); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if update.Type != nil {
		if err := validation.ValidateHabitType(*update.Type); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	habit, err := h.habitService.Update(user.ID, habitID, update)
	if isNotFound(err) {
		respondError(w, http.StatusNotFound, "habit not found")
		return
	}
	if err != nil {
		slog.Error("failed to update habit", "error", err, "user_id", user.ID, "habit_id", habitID)
		respondError(w, http.StatusInternalServerError, "failed to update habit")
		return
	}

	respondJSON(w, http.StatusOK, habit)
}

func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	habitID := r.PathValue("id")

	err := h.habitService.Delete(user.ID, habitID)
	if isNotFound(err) {
		respondError(w, http.StatusNotFound, "habit not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete habit", "error", err, "user_id", user.ID, "habit_id", habitID)
		respondError(w, http.StatusInternalServerError, "failed to delete habit")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
