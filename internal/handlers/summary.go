package handlers

import (
	"net/http"

	"studyaid/internal/models"
	"studyaid/internal/services"
	"studyaid/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type SummaryHandler struct {
	summaries *services.SummaryService
	stats     *services.StatsService
}

func NewSummaryHandler(summaries *services.SummaryService, stats *services.StatsService) *SummaryHandler {
	return &SummaryHandler{summaries: summaries, stats: stats}
}

// Create godoc
// @Summary Сгенерировать конспект из текста или загруженного файла
// @Tags summary
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateSummaryRequest true "text или fileId"
// @Success 201 {object} models.Summary
// @Failure 400 {object} helpers.Envelope
// @Failure 403 {object} helpers.Envelope
// @Failure 502 {object} helpers.Envelope "Failed to generate summary"
// @Router /api/summary [post]
func (h *SummaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}

	var req models.CreateSummaryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		helpers.WriteError(w, err)
		return
	}

	summary, err := h.summaries.Generate(r.Context(), userID, req)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusCreated, "Summary generated successfully", helpers.Envelope{
		"data":    summary.SummaryText,
		"summary": summary,
	})
}

// List godoc
// @Summary Конспекты текущего пользователя
// @Tags summary
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Summary
// @Router /api/summary [get]
func (h *SummaryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	summaries, err := h.summaries.List(r.Context(), userID)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusOK, "Summaries fetched", helpers.Envelope{"count": len(summaries), "summaries": summaries})
}

// Stats godoc
// @Summary Статистика пользователя
// @Tags summary
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.UserStats
// @Router /api/summary/stats [get]
func (h *SummaryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	stats, err := h.stats.ForUser(r.Context(), userID)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusOK, "Stats fetched", helpers.Envelope{"stats": stats})
}

// Get godoc
// @Summary Получить конспект
// @Tags summary
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID конспекта"
// @Success 200 {object} models.Summary
// @Failure 403 {object} helpers.Envelope
// @Failure 404 {object} helpers.Envelope
// @Router /api/summary/{id} [get]
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	summary, err := h.summaries.Get(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusOK, "Summary fetched", helpers.Envelope{"summary": summary})
}

// Delete godoc
// @Summary Удалить конспект
// @Tags summary
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID конспекта"
// @Success 200 {object} helpers.Envelope
// @Failure 403 {object} helpers.Envelope
// @Failure 404 {object} helpers.Envelope
// @Router /api/summary/{id} [delete]
func (h *SummaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	if err := h.summaries.Delete(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusOK, "Summary deleted", nil)
}
