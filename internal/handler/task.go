package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/taskhub/taskhub-api/internal/model"
	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/pkg/respond"
)

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	var req service.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}

	userID, ok := principal(w, r)
	if !ok {
		return
	}

	task, err := h.service.Create(r.Context(), req, userID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/tasks/%s", task.ID.Hex()))
	respond.JSON(w, r, http.StatusCreated, map[string]interface{}{
		"message": "task created",
		"task":    task,
	})
}

// List возвращает задачи, видимые аутентифицированному пользователю
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(w, r)
	if !ok {
		return
	}

	tasks, err := h.service.FindVisible(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status model.TaskStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	userID, ok := principal(w, r)
	if !ok {
		return
	}

	task, err := h.service.UpdateStatus(r.Context(), id, req.Status, userID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}
