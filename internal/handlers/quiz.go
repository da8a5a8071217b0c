package handlers

import (
	"net/http"

	"studyaid/internal/logger"
	"studyaid/internal/models"
	"studyaid/internal/services"
	"studyaid/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type QuizHandler struct {
	quizzes *services.QuizService
}

func NewQuizHandler(quizzes *services.QuizService) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

// Create godoc
// @Summary Сгенерировать квиз по тексту
// @Tags quizzes
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateQuizRequest true "Учебный текст"
// @Success 201 {object} models.Quiz
// @Failure 400 {object} helpers.Envelope "Text is required to generate a quiz."
// @Failure 502 {object} helpers.Envelope "Failed to generate quiz"
// @Router /api/quizzes [post]
func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}

	var req models.CreateQuizRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при создании квиза", zap.Error(err))
		helpers.WriteError(w, err)
		return
	}

	quiz, err := h.quizzes.Generate(r.Context(), userID, req)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusCreated, "Quiz generated successfully", helpers.Envelope{"quiz": quiz})
}

// List godoc
// @Summary Квизы текущего пользователя
// @Tags quizzes
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Quiz
// @Router /api/quizzes [get]
func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	quizzes, err := h.quizzes.List(r.Context(), userID)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusOK, "Quizzes fetched", helpers.Envelope{"count": len(quizzes), "quizzes": quizzes})
}

// Get godoc
// @Summary Получить квиз
// @Tags quizzes
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID квиза"
// @Success 200 {object} models.Quiz
// @Failure 403 {object} helpers.Envelope
// @Failure 404 {object} helpers.Envelope
// @Router /api/quizzes/{id} [get]
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	quiz, err := h.quizzes.Get(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusOK, "Quiz fetched", helpers.Envelope{"quiz": quiz})
}

// Update godoc
// @Summary Обновить квиз (title, quizText, completed)
// @Tags quizzes
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID квиза"
// @Param input body models.UpdateQuizRequest true "Изменяемые поля"
// @Success 200 {object} models.Quiz
// @Failure 403 {object} helpers.Envelope
// @Failure 404 {object} helpers.Envelope
// @Router /api/quizzes/{id} [put]
func (h *QuizHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}

	var req models.UpdateQuizRequest
	if err := decodeJSON(w, r, &req); err != nil {
		helpers.WriteError(w, err)
		return
	}

	quiz, err := h.quizzes.Update(r.Context(), userID, mux.Vars(r)["id"], req)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusOK, "Quiz updated", helpers.Envelope{"quiz": quiz})
}

// Delete godoc
// @Summary Удалить квиз
// @Tags quizzes
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID квиза"
// @Success 200 {object} helpers.Envelope
// @Failure 403 {object} helpers.Envelope
// @Failure 404 {object} helpers.Envelope
// @Router /api/quizzes/{id} [delete]
func (h *QuizHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	if err := h.quizzes.Delete(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusOK, "Quiz deleted", nil)
}
