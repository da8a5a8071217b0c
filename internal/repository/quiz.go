package repository

import (
	"context"
	"errors"

	"studyaid/internal/apperr"
	"studyaid/internal/logger"
	"studyaid/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type QuizRepository struct {
	db *pgxpool.Pool
}

func NewQuizRepository(db *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{db: db}
}

const quizColumns = `id, user_id, title, quiz_text, completed, created_at, updated_at`

func scanQuiz(row pgx.Row) (*models.Quiz, error) {
	var q models.Quiz
	if err := row.Scan(&q.ID, &q.UserID, &q.Title, &q.QuizText, &q.Completed, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuizRepository) CreateQuiz(ctx context.Context, q *models.Quiz) error {
	logger.Log.Info("Репозиторий: сохранение квиза", zap.String("quiz_id", q.ID), zap.String("user_id", q.UserID))
	query := `INSERT INTO quizzes (` + quizColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, q.ID, q.UserID, q.Title, q.QuizText, q.Completed, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		logger.Log.Error("Ошибка сохранения квиза (repo)", zap.Error(err))
		return apperr.Storage("Failed to save quiz", err)
	}
	return nil
}

func (r *QuizRepository) GetQuizByID(ctx context.Context, id string) (*models.Quiz, error) {
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE id = $1`
	q, err := scanQuiz(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Quiz not found")
	}
	if err != nil {
		logger.Log.Error("Ошибка получения квиза по ID (repo)", zap.String("quiz_id", id), zap.Error(err))
		return nil, apperr.Storage("Failed to load quiz", err)
	}
	return q, nil
}

func (r *QuizRepository) ListQuizzesByUser(ctx context.Context, userID string) ([]*models.Quiz, error) {
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		logger.Log.Error("Ошибка получения квизов (repo)", zap.Error(err))
		return nil, apperr.Storage("Failed to list quizzes", err)
	}
	defer rows.Close()

	quizzes := make([]*models.Quiz, 0)
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			logger.Log.Error("Ошибка сканирования квиза (repo)", zap.Error(err))
			return nil, apperr.Storage("Failed to list quizzes", err)
		}
		quizzes = append(quizzes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("Failed to list quizzes", err)
	}
	return quizzes, nil
}

func (r *QuizRepository) UpdateQuiz(ctx context.Context, q *models.Quiz) error {
	logger.Log.Info("Репозиторий: обновление квиза", zap.String("quiz_id", q.ID))
	query := `
		UPDATE quizzes SET title = $2, quiz_text = $3, completed = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, q.ID, q.Title, q.QuizText, q.Completed, q.UpdatedAt)
	if err != nil {
		logger.Log.Error("Ошибка обновления квиза (repo)", zap.String("quiz_id", q.ID), zap.Error(err))
		return apperr.Storage("Failed to update quiz", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Quiz not found")
	}
	return nil
}

func (r *QuizRepository) DeleteQuiz(ctx context.Context, id string) error {
	logger.Log.Info("Репозиторий: удаление квиза", zap.String("quiz_id", id))
	tag, err := r.db.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Ошибка удаления квиза (repo)", zap.String("quiz_id", id), zap.Error(err))
		return apperr.Storage("Failed to delete quiz", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Quiz not found")
	}
	return nil
}

func (r *QuizRepository) CountQuizzesByUser(ctx context.Context, userID string) (total, completed int, err error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE completed) FROM quizzes WHERE user_id = $1`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total, &completed); err != nil {
		return 0, 0, apperr.Storage("Failed to count quizzes", err)
	}
	return total, completed, nil
}
