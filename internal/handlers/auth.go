package handlers

import (
	"net/http"

	"studyaid/internal/apperr"
	"studyaid/internal/logger"
	"studyaid/internal/models"
	"studyaid/internal/reqctx"
	"studyaid/internal/services"
	"studyaid/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup godoc
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.SignupRequest true "Данные регистрации"
// @Success 201 {object} models.User
// @Failure 400 {object} helpers.Envelope "Ошибка валидации"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.Log.Warn("Ошибка декодирования JSON в Signup", zap.Error(err))
		helpers.WriteError(w, err)
		return
	}

	token, user, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusCreated, "User registered successfully", helpers.Envelope{"token": token, "user": user})
}

// Login godoc
// @Summary Авторизация пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.LoginRequest true "Данные для входа"
// @Success 200 {object} models.User
// @Failure 401 {object} helpers.Envelope "Invalid email or password"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.Log.Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.WriteError(w, err)
		return
	}

	token, user, err := h.authService.Login(r.Context(), req)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusOK, "Logged in successfully", helpers.Envelope{"token": token, "user": user})
}

// Me godoc
// @Summary Текущий пользователь
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} helpers.Envelope
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := reqctx.GetUser(r.Context())
	if !ok {
		helpers.WriteError(w, apperr.Unauthorized("No token provided"))
		return
	}
	helpers.Success(w, http.StatusOK, "User fetched", helpers.Envelope{"user": user})
}
