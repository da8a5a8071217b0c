package services

import (
	"context"
	"errors"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"studyaid/internal/apperr"
	"studyaid/internal/logger"
	"studyaid/internal/models"
	"studyaid/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FileRepo interface {
	SaveFile(ctx context.Context, f *models.UploadedFile) error
	GetFileByID(ctx context.Context, id string) (*models.UploadedFile, error)
	ListFilesByUser(ctx context.Context, userID string) ([]*models.UploadedFile, error)
	CountFilesByUser(ctx context.Context, userID string) (int, error)
}

type FileService struct {
	repo  FileRepo
	store storage.FileStore
}

func NewFileService(repo FileRepo, store storage.FileStore) *FileService {
	return &FileService{repo: repo, store: store}
}

// DetectFileType берёт MIME-тип из заголовка части, а если его нет, из расширения.
func DetectFileType(fileName, header string) string {
	header = strings.TrimSpace(header)
	if header != "" && header != "application/octet-stream" {
		return header
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName))); byExt != "" {
		return byExt
	}
	if header != "" {
		return header
	}
	return "application/octet-stream"
}

// Upload пишет байты в хранилище и создаёт запись о файле.
// Если запись не создалась, файл остаётся в хранилище и логируется как сирота.
func (s *FileService) Upload(ctx context.Context, userID, fileName, fileType string, data io.Reader) (*models.UploadedFile, error) {
	log := logger.WithCtx(ctx)

	fileName = filepath.Base(strings.TrimSpace(fileName))
	if fileName == "" || fileName == "." || fileName == string(filepath.Separator) {
		return nil, apperr.InvalidInput("No file uploaded")
	}

	storedName := uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
	path, size, err := s.store.Save(ctx, storedName, data)
	if err != nil {
		log.Error("Ошибка сохранения файла в хранилище", zap.String("stored_name", storedName), zap.Error(err))
		return nil, apperr.Storage("Error saving file", err)
	}

	f := &models.UploadedFile{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		StoredName: storedName,
		FilePath:   path,
		FileType:   DetectFileType(fileName, fileType),
		FileSize:   size,
		UploadedAt: time.Now().UTC(),
	}

	if err := s.repo.SaveFile(ctx, f); err != nil {
		log.Warn("Файл-сирота: байты сохранены, запись в БД не создана",
			zap.String("path", path), zap.String("file_name", fileName), zap.Error(err))
		return nil, err
	}

	log.Info("Файл загружен", zap.String("file_id", f.ID), zap.Int64("size", f.FileSize), zap.String("type", f.FileType))
	return f, nil
}

// GetOwned возвращает запись о файле, если она принадлежит пользователю.
func (s *FileService) GetOwned(ctx context.Context, userID, id string) (*models.UploadedFile, error) {
	f, err := s.repo.GetFileByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.UserID != userID {
		logger.WithCtx(ctx).Warn("Попытка доступа к чужому файлу", zap.String("file_id", id))
		return nil, apperr.Forbidden("Not authorized to access this file")
	}
	return f, nil
}

// Open отдаёт запись и поток байтов файла. Поток закрывает вызывающий.
func (s *FileService) Open(ctx context.Context, userID, id string) (*models.UploadedFile, io.ReadCloser, error) {
	f, err := s.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.store.Open(ctx, f.FilePath)
	if errors.Is(err, storage.ErrNotFound) {
		logger.WithCtx(ctx).Warn("Запись есть, файла нет", zap.String("file_id", id), zap.String("path", f.FilePath))
		return nil, nil, apperr.NotFound("File not found on server")
	}
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка открытия файла", zap.String("file_id", id), zap.Error(err))
		return nil, nil, apperr.Storage("Error retrieving file", err)
	}
	return f, rc, nil
}

func (s *FileService) List(ctx context.Context, userID string) ([]*models.UploadedFile, error) {
	return s.repo.ListFilesByUser(ctx, userID)
}
