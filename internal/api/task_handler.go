package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tasknest/tasknest-api/internal/api/middleware"
	"github.com/tasknest/tasknest-api/internal/api/shared"
	"github.com/tasknest/tasknest-api/internal/service"
	"github.com/tasknest/tasknest-api/internal/store"
)

// taskUpdateFields is the PATCH /tasks/{id} allow-list.
var taskUpdateFields = map[string]bool{
	"description": true,
	"completed":   true,
}

// TaskHandler handles the task CRUD endpoints. Every route requires an
// authenticated user; ownership scoping happens below in the service and
// store layers.
type TaskHandler struct {
	tasks  service.TaskService
	logger *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(tasks service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /tasks. The owner is always the bound identity;
// there is no way to create a task for someone else.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Please authenticate.")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task data")
		return
	}

	task, err := h.tasks.CreateTask(r.Context(), user.ID, req.Description, req.Completed)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(task))
}

// ListTasks handles GET /tasks with the query surface
// ?completed=true&limit=10&skip=20&sortBy=created_at:desc.
// Unparseable values are ignored rather than rejected.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Please authenticate.")
		return
	}

	opts := parseListOptions(r)

	tasks, err := h.tasks.ListTasks(r.Context(), user.ID, opts)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// GetTask handles GET /tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Please authenticate.")
		return
	}
	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.tasks.GetTask(r.Context(), user.ID, taskID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// UpdateTask handles PATCH /tasks/{id} with the same all-or-nothing
// allow-list check as profile updates.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Please authenticate.")
		return
	}
	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	var raw map[string]json.RawMessage
	if err := shared.DecodeJSON(r, &raw); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	for field := range raw {
		if !taskUpdateFields[field] {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid updates!")
			return
		}
	}

	var input service.UpdateTaskInput
	if err := unmarshalField(raw, "description", &input.Description); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := unmarshalField(raw, "completed", &input.Completed); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.tasks.UpdateTask(r.Context(), user.ID, taskID, input)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} and echoes the deleted task.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Please authenticate.")
		return
	}
	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.tasks.GetTask(r.Context(), user.ID, taskID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	if err := h.tasks.DeleteTask(r.Context(), user.ID, taskID); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// parseListOptions reads the list query parameters. Values that fail to
// parse are dropped; the store falls back to its defaults.
func parseListOptions(r *http.Request) store.ListTasksOptions {
	var opts store.ListTasksOptions
	q := r.URL.Query()

	if v := q.Get("completed"); v != "" {
		if completed, err := strconv.ParseBool(v); err == nil {
			opts.Completed = &completed
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			opts.Limit = limit
		}
	}
	if v := q.Get("skip"); v != "" {
		if skip, err := strconv.Atoi(v); err == nil && skip > 0 {
			opts.Skip = skip
		}
	}
	if v := q.Get("sortBy"); v != "" {
		field, dir, _ := strings.Cut(v, ":")
		opts.SortField = field
		opts.SortDesc = strings.EqualFold(dir, "desc")
	}

	return opts
}
