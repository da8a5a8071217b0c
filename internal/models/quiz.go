package models

import "time"

const DefaultQuizTitle = "Untitled quiz"

// Quiz хранит ответ модели как есть, без разбора на вопросы.
type Quiz struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	QuizText  string    `json:"quizText"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateQuizRequest struct {
	Text  string `json:"text"`
	Title string `json:"title,omitempty"`
}

// UpdateQuizRequest содержит только разрешённые к изменению поля.
type UpdateQuizRequest struct {
	Title     *string `json:"title,omitempty"`
	QuizText  *string `json:"quizText,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}
