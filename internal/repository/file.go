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

type FileRepository struct {
	db *pgxpool.Pool
}

func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

const fileColumns = `id, user_id, file_name, stored_name, file_path, file_type, file_size, uploaded_at`

func scanFile(row pgx.Row) (*models.UploadedFile, error) {
	var f models.UploadedFile
	err := row.Scan(
		&f.ID,
		&f.UserID,
		&f.FileName,
		&f.StoredName,
		&f.FilePath,
		&f.FileType,
		&f.FileSize,
		&f.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FileRepository) SaveFile(ctx context.Context, f *models.UploadedFile) error {
	logger.Log.Info("Репозиторий: сохранение файла", zap.String("filename", f.FileName), zap.String("user_id", f.UserID))
	query := `
		INSERT INTO files (` + fileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		f.ID,
		f.UserID,
		f.FileName,
		f.StoredName,
		f.FilePath,
		f.FileType,
		f.FileSize,
		f.UploadedAt,
	)
	if err != nil {
		logger.Log.Error("Ошибка сохранения файла (repo)", zap.Error(err))
		return apperr.Storage("File upload failed", err)
	}
	return nil
}

func (r *FileRepository) GetFileByID(ctx context.Context, id string) (*models.UploadedFile, error) {
	logger.Log.Debug("Репозиторий: получение файла по ID", zap.String("file_id", id))
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1`
	f, err := scanFile(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("File not found in database")
	}
	if err != nil {
		logger.Log.Error("Ошибка получения файла по ID (repo)", zap.String("file_id", id), zap.Error(err))
		return nil, apperr.Storage("Error retrieving file", err)
	}
	return f, nil
}

func (r *FileRepository) ListFilesByUser(ctx context.Context, userID string) ([]*models.UploadedFile, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE user_id = $1 ORDER BY uploaded_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		logger.Log.Error("Ошибка получения файлов пользователя (repo)", zap.Error(err))
		return nil, apperr.Storage("Failed to list files", err)
	}
	defer rows.Close()

	files := make([]*models.UploadedFile, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			logger.Log.Error("Ошибка сканирования файла (repo)", zap.Error(err))
			return nil, apperr.Storage("Failed to list files", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("Failed to list files", err)
	}
	return files, nil
}

func (r *FileRepository) CountFilesByUser(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM files WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, apperr.Storage("Failed to count files", err)
	}
	return n, nil
}
