package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/pkg/respond"
)

type AuthHandler struct {
	service *service.AuthService
	logger  *zap.Logger
}

func NewAuthHandler(srv *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, map[string]interface{}{
		"message": "user registered",
		"user":    user,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}
