package services

import (
	"context"
	"strings"
	"time"

	"studyaid/internal/ai"
	"studyaid/internal/apperr"
	"studyaid/internal/extract"
	"studyaid/internal/logger"
	"studyaid/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SummaryRepo interface {
	CreateSummary(ctx context.Context, s *models.Summary) error
	GetSummaryByID(ctx context.Context, id string) (*models.Summary, error)
	ListSummariesByUser(ctx context.Context, userID string) ([]*models.Summary, error)
	DeleteSummary(ctx context.Context, id string) error
	CountSummariesByUser(ctx context.Context, userID string) (int, error)
}

// OwnedFiles отдаёт запись о файле только владельцу.
type OwnedFiles interface {
	GetOwned(ctx context.Context, userID, id string) (*models.UploadedFile, error)
}

type SummaryService struct {
	repo      SummaryRepo
	files     OwnedFiles
	extractor extract.Extractor
	ai        ai.Generator
	maxChars  int
}

func NewSummaryService(repo SummaryRepo, files OwnedFiles, extractor extract.Extractor, gen ai.Generator, maxChars int) *SummaryService {
	return &SummaryService{repo: repo, files: files, extractor: extractor, ai: gen, maxChars: maxChars}
}

// Generate строит конспект из переданного текста или из текста загруженного файла.
func (s *SummaryService) Generate(ctx context.Context, userID string, req models.CreateSummaryRequest) (*models.Summary, error) {
	log := logger.WithCtx(ctx)

	text := strings.TrimSpace(req.Text)
	fileID := strings.TrimSpace(req.FileID)
	if text == "" && fileID == "" {
		return nil, apperr.InvalidInput("Text or fileId is required to generate a summary.")
	}

	var sourceID *string
	if fileID != "" {
		f, err := s.files.GetOwned(ctx, userID, fileID)
		if err != nil {
			return nil, err
		}
		sourceID = &f.ID

		if text == "" {
			extracted, err := s.extractor.Extract(ctx, f)
			if err != nil {
				return nil, err
			}
			text = strings.TrimSpace(extracted)
			if text == "" {
				return nil, apperr.InvalidInput("No text could be extracted from the file")
			}
			log.Debug("Текст извлечён из файла", zap.String("file_id", f.ID), zap.Int("chars", len(text)))
		}
	}

	out, err := s.ai.Generate(ctx, buildSummaryPrompt(text, s.maxChars))
	if err != nil {
		log.Error("Ошибка генерации конспекта", zap.Error(err))
		return nil, generationFailed("Failed to generate summary", err)
	}

	now := time.Now().UTC()
	sum := &models.Summary{
		ID:          uuid.NewString(),
		UserID:      userID,
		FileID:      sourceID,
		SummaryText: orDefault(out, noSummaryGenerated),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateSummary(ctx, sum); err != nil {
		return nil, err
	}

	log.Info("Конспект создан", zap.String("summary_id", sum.ID))
	return sum, nil
}

func (s *SummaryService) List(ctx context.Context, userID string) ([]*models.Summary, error) {
	return s.repo.ListSummariesByUser(ctx, userID)
}

func (s *SummaryService) Get(ctx context.Context, userID, id string) (*models.Summary, error) {
	sum, err := s.repo.GetSummaryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sum.UserID != userID {
		logger.WithCtx(ctx).Warn("Попытка доступа к чужому конспекту", zap.String("summary_id", id))
		return nil, apperr.Forbidden("Not authorized to access this summary")
	}
	return sum, nil
}

func (s *SummaryService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.DeleteSummary(ctx, id); err != nil {
		return err
	}
	logger.WithCtx(ctx).Info("Конспект удалён", zap.String("summary_id", id))
	return nil
}
