package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/foresight-labs/foresight/internal/domain"
	"github.com/foresight-labs/foresight/internal/service"
	"github.com/go-chi/chi/v5"
)

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var task domain.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if task.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	if task.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if task.Estimate < 0 {
		writeError(w, http.StatusBadRequest, "estimate must be non-negative")
		return
	}

	h.svc.Add(task)
	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List())
}

func (h *TaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	task, ok := h.svc.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// Ranked lists tasks by expected gain descending, ties in insertion order.
func (h *TaskHandler) Ranked(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Ranked())
}
