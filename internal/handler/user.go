package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/pkg/respond"
)

type UserHandler struct {
	service *service.UserService
	logger  *zap.Logger
}

func NewUserHandler(srv *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: srv,
		logger:  logger,
	}
}

// Current возвращает профиль аутентифицированного пользователя
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := principal(w, r)
	if !ok {
		return
	}

	user, err := h.service.Get(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, users)
}

func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Role int `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	user, err := h.service.UpdateRole(r.Context(), id, req.Role)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, user)
}
