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

type SummaryRepository struct {
	db *pgxpool.Pool
}

func NewSummaryRepository(db *pgxpool.Pool) *SummaryRepository {
	return &SummaryRepository{db: db}
}

const summaryColumns = `id, user_id, file_id, summary_text, created_at, updated_at`

func scanSummary(row pgx.Row) (*models.Summary, error) {
	var s models.Summary
	if err := row.Scan(&s.ID, &s.UserID, &s.FileID, &s.SummaryText, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SummaryRepository) CreateSummary(ctx context.Context, s *models.Summary) error {
	logger.Log.Info("Репозиторий: сохранение конспекта", zap.String("summary_id", s.ID), zap.String("user_id", s.UserID))
	query := `INSERT INTO summaries (` + summaryColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, s.ID, s.UserID, s.FileID, s.SummaryText, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		logger.Log.Error("Ошибка сохранения конспекта (repo)", zap.Error(err))
		return apperr.Storage("Failed to save summary", err)
	}
	return nil
}

func (r *SummaryRepository) GetSummaryByID(ctx context.Context, id string) (*models.Summary, error) {
	query := `SELECT ` + summaryColumns + ` FROM summaries WHERE id = $1`
	s, err := scanSummary(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Summary not found")
	}
	if err != nil {
		logger.Log.Error("Ошибка получения конспекта (repo)", zap.String("summary_id", id), zap.Error(err))
		return nil, apperr.Storage("Failed to load summary", err)
	}
	return s, nil
}

func (r *SummaryRepository) ListSummariesByUser(ctx context.Context, userID string) ([]*models.Summary, error) {
	query := `SELECT ` + summaryColumns + ` FROM summaries WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		logger.Log.Error("Ошибка получения конспектов (repo)", zap.Error(err))
		return nil, apperr.Storage("Failed to list summaries", err)
	}
	defer rows.Close()

	summaries := make([]*models.Summary, 0)
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			logger.Log.Error("Ошибка сканирования конспекта (repo)", zap.Error(err))
			return nil, apperr.Storage("Failed to list summaries", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("Failed to list summaries", err)
	}
	return summaries, nil
}

func (r *SummaryRepository) DeleteSummary(ctx context.Context, id string) error {
	logger.Log.Info("Репозиторий: удаление конспекта", zap.String("summary_id", id))
	tag, err := r.db.Exec(ctx, `DELETE FROM summaries WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Ошибка удаления конспекта (repo)", zap.String("summary_id", id), zap.Error(err))
		return apperr.Storage("Failed to delete summary", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Summary not found")
	}
	return nil
}

func (r *SummaryRepository) CountSummariesByUser(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM summaries WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, apperr.Storage("Failed to count summaries", err)
	}
	return n, nil
}
