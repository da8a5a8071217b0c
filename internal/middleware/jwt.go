package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"studyaid/internal/apperr"
	"studyaid/internal/logger"
	"studyaid/internal/models"
	"studyaid/internal/reqctx"
	"studyaid/internal/utils"
	"studyaid/internal/utils/helpers"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// UserLookup находит пользователя по id из токена. Хеш пароля не нужен.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// JWTAuth проверяет заголовок Authorization: Bearer <token> и кладёт пользователя в контекст.
func JWTAuth(secret string, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			log := logger.WithCtx(r.Context())

			authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if !strings.HasPrefix(authHeader, "Bearer ") || tokenString == "" {
				log.Warn("JWTAuth: отсутствует access token")
				helpers.Error(w, http.StatusUnauthorized, "No token provided", "")
				return
			}

			userID, err := utils.ParseToken(secret, tokenString)
			if errors.Is(err, jwt.ErrTokenExpired) {
				log.Warn("JWTAuth: токен просрочен")
				helpers.Error(w, http.StatusUnauthorized, "Token expired. Please log in again.", "")
				return
			}
			if err != nil {
				log.Warn("JWTAuth: неверный токен", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "Invalid token. Please log in again.", "")
				return
			}

			user, err := users.GetUserByID(r.Context(), userID)
			if apperr.Is(err, apperr.KindNotFound) {
				log.Warn("JWTAuth: пользователь из токена не найден", zap.String("user_id", userID))
				helpers.Error(w, http.StatusUnauthorized, "User not found", "")
				return
			}
			if err != nil {
				log.Error("JWTAuth: ошибка поиска пользователя", zap.String("user_id", userID), zap.Error(err))
				helpers.Error(w, http.StatusInternalServerError, "Server error during authentication.", "")
				return
			}

			ctx := reqctx.WithUser(r.Context(), user)
			logger.WithCtx(ctx).Debug("JWTAuth: токен валиден")

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
