package repository

import (
	"context"
	"errors"

	"studyaid/internal/apperr"
	"studyaid/internal/logger"
	"studyaid/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	logger.Log.Info("Создание пользователя (repo)", zap.String("email", user.Email))
	query := `
	INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperr.InvalidInput("Email is already registered")
		}
		logger.Log.Error("Ошибка создания пользователя (repo)", zap.Error(err))
		return apperr.Storage("Failed to create user", err)
	}
	return nil
}

func (r *UserRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	logger.Log.Debug("Проверка email на уникальность (repo)", zap.String("email", email))
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		logger.Log.Error("Ошибка проверки email (repo)", zap.Error(err))
		return false, apperr.Storage("Failed to check email", err)
	}
	return exists, nil
}

// GetByEmail возвращает пользователя вместе с хешем пароля. Только для логина.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по email (repo)", zap.String("email", email))
	query := `SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE email = $1`

	var u models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		logger.Log.Error("Ошибка получения пользователя по email (repo)", zap.Error(err))
		return nil, apperr.Storage("Failed to load user", err)
	}
	return &u, nil
}

// GetUserByID не выбирает password_hash: результат уходит в контекст запроса.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по ID (repo)", zap.String("user_id", id))
	query := `SELECT id, name, email, created_at, updated_at FROM users WHERE id = $1`

	var u models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		logger.Log.Error("Ошибка получения пользователя по ID (repo)", zap.String("user_id", id), zap.Error(err))
		return nil, apperr.Storage("Failed to load user", err)
	}
	return &u, nil
}
