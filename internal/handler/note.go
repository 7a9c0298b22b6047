package handler

import (
	"log/slog"
	"net/http"

	"github.com/pulsedash/pulse/internal/ctxkeys"
	"github.com/pulsedash/pulse/internal/service"
)

type NoteHandler struct {
	noteService *service.NoteService
}

func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	notes, err := h.noteService.Notes(user.ID)
	if err != nil {
		slog.Error("failed to get notes", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load notes")
		return
	}

	respondJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		Content string   `json:"content"`
		Tags    []string `json:"tags"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Content == "" {
		respondError(w, http.StatusBadRequest, "content is required")
		return
	}

	note, err := h.noteService.Create(user.ID, req.Content, req.Tags)
	if err != nil {
		slog.Error("failed to create note", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to create note")
		return
	}

	respondJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	noteID := r.PathValue("id")

	var update service.NoteUpdate
	if err := decodeJSON(r, &update); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if update.Content != nil && *update.Content == "" {
		respondError(w, http.StatusBadRequest, "content is required")
		return
	}

	note, err := h.noteService.Update(user.ID, noteID, update)
	if isNotFound(err) {
		respondError(w, http.StatusNotFound, "note not found")
		return
	}
	if err != nil {
		slog.Error("failed to update note", "error", err, "user_id", user.ID, "note_id", noteID)
		respondError(w, http.StatusInternalServerError, "failed to update note")
		return
	}

	respondJSON(w, http.StatusOK, note)
}

// HTML returns the note content rendered as markdown for preview.
func (h *NoteHandler) HTML(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	noteID := r.PathValue("id")

	html, err := h.noteService.RenderHTML(user.ID, noteID)
	if isNotFound(err) {
		respondError(w, http.StatusNotFound, "note not found")
		return
	}
	if err != nil {
		slog.Error("failed to render note", "error", err, "user_id", user.ID, "note_id", noteID)
		respondError(w, http.StatusInternalServerError, "failed to render note")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"html": html})
}
