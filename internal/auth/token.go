package auth

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUnauthorized = errors.New("unauthorized")

const userIDClaim = "user_id"

type TokenIssuer struct { // Выпускает и проверяет bearer-токены с идентификатором пользователя
	auth *jwtauth.JWTAuth
	ttl  time.Duration
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer { // Конструктор
	return &TokenIssuer{
		auth: jwtauth.New("HS256", secret, nil),
		ttl:  ttl,
	}
}

func (i *TokenIssuer) JWTAuth() *jwtauth.JWTAuth { // Для jwtauth.Verifier в цепочке middleware
	return i.auth
}

func (i *TokenIssuer) Issue(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		userIDClaim: userID.Hex(),
		"jti":       uuid.NewString(),
		"iat":       now.Unix(),
		"exp":       now.Add(i.ttl).Unix(),
	}

	_, tokenString, err := i.auth.Encode(claims)
	return tokenString, err
}

// Validate проверяет подпись и срок действия токена и возвращает
// идентификатор пользователя. Любая ошибка сворачивается в ErrUnauthorized.
func (i *TokenIssuer) Validate(tokenString string) (primitive.ObjectID, error) {
	token, err := jwtauth.VerifyToken(i.auth, tokenString)
	if err != nil {
		return primitive.NilObjectID, ErrUnauthorized
	}

	raw, ok := token.Get(userIDClaim)
	if !ok {
		return primitive.NilObjectID, ErrUnauthorized
	}
	hex, ok := raw.(string)
	if !ok {
		return primitive.NilObjectID, ErrUnauthorized
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrUnauthorized
	}
	return id, nil
}
