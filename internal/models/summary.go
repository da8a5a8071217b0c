package models

import "time"

type Summary struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	FileID      *string   `json:"fileId,omitempty"`
	SummaryText string    `json:"summaryText"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateSummaryRequest struct {
	Text   string `json:"text,omitempty"`
	FileID string `json:"fileId,omitempty"`
}

type AskRequest struct {
	Prompt string `json:"prompt"`
}
