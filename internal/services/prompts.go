package services

import (
	"errors"
	"strings"

	"studyaid/internal/apperr"
)

const (
	quizPromptTemplate = "Create a multiple-choice quiz based on the following study material.\n" +
		"Provide 5 questions with 4 options each, and mark the correct answer:\n\n"
	summaryPromptTemplate = "Summarize the following study material into a concise study summary.\n" +
		"Highlight the key concepts, definitions and takeaways:\n\n"

	noQuizGenerated    = "No quiz generated."
	noSummaryGenerated = "No summary generated."
	noAnswerGenerated  = "No response generated."
)

func buildQuizPrompt(text string, maxChars int) string {
	return quizPromptTemplate + truncateRunes(text, maxChars)
}

func buildSummaryPrompt(text string, maxChars int) string {
	return summaryPromptTemplate + truncateRunes(text, maxChars)
}

// truncateRunes обрезает текст до maxChars символов (не байт). При maxChars <= 0 не обрезает.
func truncateRunes(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	n := 0
	for i := range text {
		if n == maxChars {
			return text[:i]
		}
		n++
	}
	return text
}

func orDefault(text, def string) string {
	if strings.TrimSpace(text) == "" {
		return def
	}
	return text
}

// generationFailed переупаковывает ошибку генератора под сообщение конкретной операции.
func generationFailed(msg string, err error) error {
	if apperr.Is(err, apperr.KindInvalidInput) {
		return err
	}
	var e *apperr.Error
	if errors.As(err, &e) && e.Err != nil {
		err = e.Err
	}
	return apperr.Upstream(msg, err)
}
