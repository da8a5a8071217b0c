package services

import (
	"context"

	"studyaid/internal/models"
)

type summaryCounter interface {
	CountSummariesByUser(ctx context.Context, userID string) (int, error)
}

type quizCounter interface {
	CountQuizzesByUser(ctx context.Context, userID string) (total, completed int, err error)
}

type fileCounter interface {
	CountFilesByUser(ctx context.Context, userID string) (int, error)
}

type StatsService struct {
	summaries summaryCounter
	quizzes   quizCounter
	files     fileCounter
}

func NewStatsService(summaries summaryCounter, quizzes quizCounter, files fileCounter) *StatsService {
	return &StatsService{summaries: summaries, quizzes: quizzes, files: files}
}

func (s *StatsService) ForUser(ctx context.Context, userID string) (*models.UserStats, error) {
	var st models.UserStats
	var err error

	if st.TotalSummaries, err = s.summaries.CountSummariesByUser(ctx, userID); err != nil {
		return nil, err
	}
	if st.TotalQuizzes, st.CompletedQuizzes, err = s.quizzes.CountQuizzesByUser(ctx, userID); err != nil {
		return nil, err
	}
	if st.TotalFiles, err = s.files.CountFilesByUser(ctx, userID); err != nil {
		return nil, err
	}
	return &st, nil
}
