package auth

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhub/taskhub-api/pkg/respond"
)

type contextKey string

const principalCtxKey contextKey = "principal"

// Authenticator стоит за jwtauth.Verifier и кладет проверенный
// идентификатор пользователя в контекст запроса
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			respond.Error(w, r, http.StatusUnauthorized, "missing or invalid token")
			return
		}

		hex, ok := claims[userIDClaim].(string)
		if !ok {
			respond.Error(w, r, http.StatusUnauthorized, "invalid token claims")
			return
		}
		userID, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			respond.Error(w, r, http.StatusUnauthorized, "invalid token claims")
			return
		}

		ctx := context.WithValue(r.Context(), principalCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func PrincipalFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(principalCtxKey).(primitive.ObjectID)
	return id, ok
}
