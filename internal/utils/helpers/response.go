package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"studyaid/internal/apperr"
)

// Envelope: общий вид ответа, {success, message, error?} плюс ключи полезной нагрузки.
type Envelope map[string]interface{}

func JSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		return
	}
}

// Success пишет {success:true, message} и добавляет ключи из payload.
func Success(w http.ResponseWriter, status int, message string, payload Envelope) {
	body := Envelope{"success": true, "message": message}
	for k, v := range payload {
		if k == "success" || k == "message" {
			continue
		}
		body[k] = v
	}
	JSON(w, status, body)
}

func Error(w http.ResponseWriter, status int, message, detail string) {
	body := Envelope{"success": false, "message": message}
	if detail != "" {
		body["error"] = detail
	}
	JSON(w, status, body)
}

// WriteError отображает ошибку в статус по её виду. Причина (Detail) уходит в поле error,
// ошибки без вида скрываются за общим сообщением.
func WriteError(w http.ResponseWriter, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		Error(w, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	Error(w, apperr.HTTPStatus(err), e.Message, e.Detail())
}
