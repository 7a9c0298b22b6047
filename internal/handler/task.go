package handler

import (
	"log/slog"
	"net/http"

	"github.com/pulsedash/pulse/internal/ctxkeys"
	"github.com/pulsedash/pulse/internal/service"
	"github.com/pulsedash/pulse/internal/validation"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	tasks, err := h.taskService.Tasks(user.ID)
	if err != nil {
		slog.Error("failed to get tasks", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load tasks")
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		Title    string `json:"title"`
		Priority string `json:"priority"`
		DueTime  string `json:"dueTime"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidatePriority(req.Priority); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.taskService.Create(user.ID, req.Title, req.Priority, req.DueTime)
	if err != nil {
		slog.Error("failed to create task", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to create task")
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	taskID := r.PathValue("id")

	var update service.TaskUpdate
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
	if update.Priority != nil {
		if err := validation.ValidatePriority(*update.Priority); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	task, err := h.taskService.Update(user.ID, taskID, update)
	if isNotFound(err) {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		slog.Error("failed to update task", "error", err, "user_id", user.ID, "task_id", taskID)
		respondError(w, http.StatusInternalServerError, "failed to update task")
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	taskID := r.PathValue("id")

	err := h.taskService.Delete(user.ID, taskID)
	if isNotFound(err) {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete task", "error", err, "user_id", user.ID, "task_id", taskID)
		respondError(w, http.StatusInternalServerError, "failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
