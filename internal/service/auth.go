package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskhub/taskhub-api/internal/auth"
	"github.com/taskhub/taskhub-api/internal/model"
	"github.com/taskhub/taskhub-api/internal/repo"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	users  repo.UserRepository
	tokens *auth.TokenIssuer
}

func NewAuthService(users repo.UserRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return model.User{}, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hash),
		Role:      model.DefaultRole,
		LastLogin: time.Now(),
	}

	// Дубликат email возвращается как repo.ErrorConflict
	return s.users.Create(ctx, user)
}

// Login проверяет учетные данные, обновляет last_login и выдает токен
func (s *AuthService) Login(ctx context.Context, email, password string) (model.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrorNotFound) {
		return model.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return model.User{}, "", ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.users.SetLastLogin(ctx, user.ID, now); err != nil {
		return model.User{}, "", err
	}
	user.LastLogin = now

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.User{}, "", err
	}
	return user, token, nil
}
