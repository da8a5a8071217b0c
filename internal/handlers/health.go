package handlers

import (
	"context"
	"net/http"
	"time"

	"studyaid/internal/logger"
	"studyaid/internal/utils/helpers"

	"go.uber.org/zap"
)

// Pinger: всё, что умеет проверить соединение (например, *pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary Проверка состояния сервиса
// @Tags health
// @Produce json
// @Success 200 {object} helpers.Envelope
// @Failure 503 {object} helpers.Envelope
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			logger.WithCtx(r.Context()).Error("Health: база недоступна", zap.Error(err))
			helpers.Error(w, http.StatusServiceUnavailable, "Database unavailable", "")
			return
		}
	}
	helpers.Success(w, http.StatusOK, "OK", helpers.Envelope{"status": "ok", "time": time.Now().UTC()})
}
