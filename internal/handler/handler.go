package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/taskhub/taskhub-api/internal/auth"
	"github.com/taskhub/taskhub-api/internal/repo"
	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/pkg/respond"
)

// handleError переводит доменные ошибки в HTTP-статусы, все остальное - 500
func handleError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, repo.ErrorConflict):
		respond.Error(w, r, http.StatusBadRequest, "email already registered")
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusBadRequest, "validation error")
	case errors.Is(err, service.ErrInvalidCredentials):
		respond.Error(w, r, http.StatusBadRequest, "invalid email or password")
	case errors.Is(err, service.ErrForbidden):
		respond.Error(w, r, http.StatusForbidden, "forbidden")
	case errors.Is(err, auth.ErrUnauthorized):
		respond.Error(w, r, http.StatusUnauthorized, "unauthorized")
	default:
		logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}

// principal достает пользователя из контекста, иначе пишет 401
func principal(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		respond.Error(w, r, http.StatusUnauthorized, "unauthorized")
	}
	return id, ok
}

// pathID парсит {id} из пути; кривой идентификатор равнозначен отсутствию документа
func pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, http.StatusNotFound, "not found")
		return primitive.NilObjectID, false
	}
	return id, true
}
