package models

type UserStats struct {
	TotalSummaries   int `json:"totalSummaries"`
	TotalQuizzes     int `json:"totalQuizzes"`
	CompletedQuizzes int `json:"completedQuizzes"`
	TotalFiles       int `json:"totalFiles"`
}
