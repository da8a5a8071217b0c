package services

import (
	"context"
	"strings"
	"time"

	"studyaid/internal/ai"
	"studyaid/internal/apperr"
	"studyaid/internal/logger"
	"studyaid/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type QuizRepo interface {
	CreateQuiz(ctx context.Context, q *models.Quiz) error
	GetQuizByID(ctx context.Context, id string) (*models.Quiz, error)
	ListQuizzesByUser(ctx context.Context, userID string) ([]*models.Quiz, error)
	UpdateQuiz(ctx context.Context, q *models.Quiz) error
	DeleteQuiz(ctx context.Context, id string) error
	CountQuizzesByUser(ctx context.Context, userID string) (total, completed int, err error)
}

type QuizService struct {
	repo     QuizRepo
	ai       ai.Generator
	maxChars int
}

func NewQuizService(repo QuizRepo, gen ai.Generator, maxChars int) *QuizService {
	return &QuizService{repo: repo, ai: gen, maxChars: maxChars}
}

// Generate просит модель составить квиз и сохраняет ответ как есть.
// Пустой текст отклоняется до обращения к модели, при ошибке модели ничего не сохраняется.
func (s *QuizService) Generate(ctx context.Context, userID string, req models.CreateQuizRequest) (*models.Quiz, error) {
	log := logger.WithCtx(ctx)

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperr.InvalidInput("Text is required to generate a quiz.")
	}

	out, err := s.ai.Generate(ctx, buildQuizPrompt(text, s.maxChars))
	if err != nil {
		log.Error("Ошибка генерации квиза", zap.Error(err))
		return nil, generationFailed("Failed to generate quiz", err)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = models.DefaultQuizTitle
	}
	now := time.Now().UTC()
	q := &models.Quiz{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		QuizText:  orDefault(out, noQuizGenerated),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateQuiz(ctx, q); err != nil {
		return nil, err
	}

	log.Info("Квиз создан", zap.String("quiz_id", q.ID))
	return q, nil
}

func (s *QuizService) List(ctx context.Context, userID string) ([]*models.Quiz, error) {
	return s.repo.ListQuizzesByUser(ctx, userID)
}

func (s *QuizService) Get(ctx context.Context, userID, id string) (*models.Quiz, error) {
	q, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.UserID != userID {
		logger.WithCtx(ctx).Warn("Попытка доступа к чужому квизу", zap.String("quiz_id", id))
		return nil, apperr.Forbidden("Not authorized to access this quiz")
	}
	return q, nil
}

// Update меняет только title, quizText и completed.
func (s *QuizService) Update(ctx context.Context, userID, id string, req models.UpdateQuizRequest) (*models.Quiz, error) {
	q, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		q.Title = strings.TrimSpace(*req.Title)
		if q.Title == "" {
			q.Title = models.DefaultQuizTitle
		}
	}
	if req.QuizText != nil {
		if strings.TrimSpace(*req.QuizText) == "" {
			return nil, apperr.InvalidInput("Quiz text cannot be empty")
		}
		q.QuizText = *req.QuizText
	}
	if req.Completed != nil {
		q.Completed = *req.Completed
	}
	q.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateQuiz(ctx, q); err != nil {
		return nil, err
	}
	logger.WithCtx(ctx).Info("Квиз обновлён", zap.String("quiz_id", id))
	return q, nil
}

func (s *QuizService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.DeleteQuiz(ctx, id); err != nil {
		return err
	}
	logger.WithCtx(ctx).Info("Квиз удалён", zap.String("quiz_id", id))
	return nil
}
