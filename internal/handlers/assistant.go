package handlers

import (
	"net/http"

	"studyaid/internal/models"
	"studyaid/internal/services"
	"studyaid/internal/utils/helpers"
)

type AssistantHandler struct {
	ask *services.AskService
}

func NewAssistantHandler(ask *services.AskService) *AssistantHandler {
	return &AssistantHandler{ask: ask}
}

// Ask godoc
// @Summary Свободный вопрос модели
// @Tags gemini
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.AskRequest true "Промпт"
// @Success 200 {object} helpers.Envelope
// @Failure 400 {object} helpers.Envelope "Prompt is required"
// @Failure 502 {object} helpers.Envelope
// @Router /api/gemini/ask [post]
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		helpers.WriteError(w, err)
		return
	}
	answer, err := h.ask.Ask(r.Context(), req.Prompt)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusOK, "Response generated", helpers.Envelope{"answer": answer})
}
