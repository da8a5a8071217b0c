package services

import (
	"context"
	"strings"

	"studyaid/internal/ai"
	"studyaid/internal/apperr"
	"studyaid/internal/logger"

	"go.uber.org/zap"
)

// AskService передаёт произвольный вопрос модели без шаблона.
type AskService struct {
	ai ai.Generator
}

func NewAskService(gen ai.Generator) *AskService {
	return &AskService{ai: gen}
}

func (s *AskService) Ask(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apperr.InvalidInput("Prompt is required")
	}
	out, err := s.ai.Generate(ctx, prompt)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка запроса к модели", zap.Error(err))
		return "", generationFailed("Failed to get response from AI service", err)
	}
	return orDefault(out, noAnswerGenerated), nil
}
