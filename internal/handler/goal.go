package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pulsedash/pulse/internal/ctxkeys"
	"github.com/pulsedash/pulse/internal/service"
	"github.com/pulsedash/pulse/internal/validation"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(user.ID)
	if err != nil {
		slog.Error("failed to get goals", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load goals")
		return
	}

	respondJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.ByID(user.ID, goalID)
	if isNotFound(err) {
		respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to get goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to load goal")
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		GoalType    string     `json:"goalType"`
		TargetValue float64    `json:"targetValue"`
		Unit        string     `json:"unit"`
		TargetDate  *time.Time `json:"targetDate"`
		Color       string     `json:"color"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidateGoalType(req.GoalType); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.goalService.Create(user.ID, req.Title, req.Description, req.GoalType, req.TargetValue, req.Unit, req.TargetDate, req.Color)
	if err != nil {
		slog.Error("failed to create goal", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to create goal")
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var update service.GoalUpdate
	if err := decodeJSON(r, &update); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if update.Title != nil {
		if err := validation.ValidateTitle(*update.Title); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if update.GoalType != nil {
		if err := validation.ValidateGoalType(*update.GoalType); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	goal, err := h.goalService.Update(user.ID, goalID, update)
	if isNotFound(err) {
		respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to update goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to update goal")
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(user.ID, goalID)
	if isNotFound(err) {
		respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to delete goal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *GoalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	entries, err := h.goalService.Entries(user.ID, goalID)
	if isNotFound(err) {
		respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to get goal entries", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to load goal entries")
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// CreateEntry logs progress against a goal. The response carries both the
// new entry and the goal with its rolled-up current value, so clients can
// refresh progress without a second request.
func (h *GoalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req struct {
		Value float64 `json:"value"`
		Note  string  `json:"note"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, goal, err := h.goalService.AddEntry(user.ID, goalID, req.Value, req.Note)
	if isNotFound(err) {
		respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to create goal entry", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to create goal entry")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"entry": entry,
		"goal":  goal,
	})
}

func (h *GoalHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	entryID := r.PathValue("id")

	err := h.goalService.RemoveEntry(user.ID, entryID)
	if isNotFound(err) {
		respondError(w, http.StatusNotFound, "goal entry not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete goal entry", "error", err, "user_id", user.ID, "entry_id", entryID)
		respondError(w, http.StatusInternalServerError, "failed to delete goal entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *GoalHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	report, err := h.goalService.Analytics(user.ID, goalID, time.Now())
	if isNotFound(err) {
		respondError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to compute goal analytics", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to compute goal analytics")
		return
	}

	respondJSON(w, http.StatusOK, report)
}
