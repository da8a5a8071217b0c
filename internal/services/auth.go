package services

import (
	"context"
	"strings"
	"time"

	"studyaid/internal/apperr"
	"studyaid/internal/logger"
	"studyaid/internal/models"
	"studyaid/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserRepo interface {
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

type AuthService struct {
	repo      UserRepo
	jwtSecret string
	accessTTL time.Duration
}

func NewAuthService(repo UserRepo, jwtSecret string, accessTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, jwtSecret: jwtSecret, accessTTL: accessTTL}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup регистрирует пользователя и сразу выдаёт ему токен.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (string, *models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return "", nil, apperr.InvalidInput("All fields are required")
	}
	if req.Password != req.ConfirmPassword {
		return "", nil, apperr.InvalidInput("Passwords do not match")
	}
	logger.Log.Info("Регистрация пользователя (service)", zap.String("email", email))

	taken, err := s.repo.IsEmailTaken(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if taken {
		return "", nil, apperr.InvalidInput("Email is already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Log.Error("Ошибка хеширования пароля", zap.Error(err))
		return "", nil, apperr.Internal("Failed to create user", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.issue(user)
	if err != nil {
		return "", nil, err
	}
	logger.Log.Info("Пользователь зарегистрирован (service)", zap.String("user_id", user.ID))
	user.PasswordHash = ""
	return token, user, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return "", nil, apperr.InvalidInput("Email and password are required")
	}
	logger.Log.Info("Попытка входа (service)", zap.String("email", email))

	user, err := s.repo.GetByEmail(ctx, email)
	if apperr.Is(err, apperr.KindNotFound) {
		logger.Log.Warn("Пользователь не найден (service)", zap.String("email", email))
		return "", nil, apperr.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return "", nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Log.Warn("Неверный пароль (service)", zap.String("email", email))
		return "", nil, apperr.Unauthorized("Invalid email or password")
	}

	token, err := s.issue(user)
	if err != nil {
		return "", nil, err
	}
	logger.Log.Info("Вход выполнен (service)", zap.String("user_id", user.ID))
	user.PasswordHash = ""
	return token, user, nil
}

func (s *AuthService) issue(user *models.User) (string, error) {
	token, err := utils.GenerateToken(s.jwtSecret, user.ID, s.accessTTL)
	if err != nil {
		logger.Log.Error("Ошибка генерации access-токена", zap.Error(err))
		return "", apperr.Internal("Failed to issue token", err)
	}
	return token, nil
}

// GetUserByID нужен JWT-мидлвари. Хеш пароля репозиторий не выбирает.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}
