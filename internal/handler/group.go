package handler

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/pkg/respond"
)

type GroupHandler struct {
	service *service.GroupService
	logger  *zap.Logger
}

func NewGroupHandler(srv *service.GroupService, logger *zap.Logger) *GroupHandler {
	return &GroupHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string               `json:"name"`
		Members []primitive.ObjectID `json:"members"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	userID, ok := principal(w, r)
	if !ok {
		return
	}

	group, err := h.service.Create(r.Context(), req.Name, req.Members, userID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, map[string]interface{}{
		"message": "group created",
		"group":   group,
	})
}

// Mine возвращает группы, где пользователь участник или создатель
func (h *GroupHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(w, r)
	if !ok {
		return
	}

	groups, err := h.service.FindMine(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, groups)
}

func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	userID, ok := principal(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond.Message(w, r, http.StatusOK, "group deleted")
}
