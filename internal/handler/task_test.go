package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pulsedash/pulse/internal/ctxkeys"
	"github.com/pulsedash/pulse/internal/model"
	"github.com/pulsedash/pulse/internal/repository"
	"github.com/pulsedash/pulse/internal/service"
)

type fakeTaskRepo struct {
	tasks map[string]*model.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*model.Task{}}
}

func (r *fakeTaskRepo) Create(task *model.Task) error {
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) ByID(userID, taskID string) (*model.Task, error) {
	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, repository.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) Tasks(userID string) ([]*model.Task, error) {
	var out []*model.Task
	for _, task := range r.tasks {
		if task.UserID == userID {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(task *model.Task) error {
	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return repository.ErrTaskNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(userID, taskID string) error {
	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return repository.ErrTaskNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

func newTaskTestServer(repo repository.TaskRepository) http.Handler {
	h := NewTaskHandler(service.NewTaskService(repo))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tasks", h.List)
	mux.HandleFunc("POST /api/tasks", h.Create)
	mux.HandleFunc("PATCH /api/tasks/{id}", h.Update)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.Delete)

	user := &model.User{ID: "user-1", Username: "alexchen", Name: "Alex Chen"}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, r.WithContext(ctxkeys.WithUser(r.Context(), user)))
	})
}

func TestTaskHandler_Create(t *testing.T) {
	srv := newTaskTestServer(newFakeTaskRepo())

	body := `{"title":"Review PRs","priority":"high","dueTime":"14:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var task model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if task.ID == "" {
		t.Error("task.ID is empty")
	}
	if task.Title != "Review PRs" {
		t.Errorf("Title = %q", task.Title)
	}
	if task.Priority != model.TaskPriorityHigh {
		t.Errorf("Priority = %q, want high", task.Priority)
	}
}

func TestTaskHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"MissingTitle", `{"priority":"high"}`},
		{"BadPriority", `{"title":"x","priority":"urgent"}`},
		{"UnknownField", `{"title":"x","bogus":true}`},
		{"MalformedJSON", `{"title":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTaskTestServer(newFakeTaskRepo())

			req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestTaskHandler_UpdateCompletion(t *testing.T) {
	repo := newFakeTaskRepo()
	repo.tasks["t1"] = &model.Task{ID: "t1", UserID: "user-1", Title: "Standup", Priority: "medium"}
	srv := newTaskTestServer(repo)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/t1", strings.NewReader(`{"completed":true}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var task model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !task.Completed {
		t.Error("Completed = false, want true")
	}
	if task.Title != "Standup" {
		t.Errorf("Title = %q, want untouched %q", task.Title, "Standup")
	}
}

func TestTaskHandler_UpdateNotFound(t *testing.T) {
	srv := newTaskTestServer(newFakeTaskRepo())

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/nope", strings.NewReader(`{"completed":true}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestTaskHandler_Delete(t *testing.T) {
	repo := newFakeTaskRepo()
	repo.tasks["t1"] = &model.Task{ID: "t1", UserID: "user-1", Title: "Standup"}
	srv := newTaskTestServer(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/t1", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/tasks/t1", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
