package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"studyaid/internal/apperr"
	"studyaid/internal/reqctx"
)

const maxJSONBody = 1 << 20

// decodeJSON читает тело запроса в dst. Пустое тело и лишний мусор после объекта считаются ошибкой.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.InvalidInput("Request body is empty")
		}
		return apperr.InvalidInput("Invalid JSON")
	}
	if dec.More() {
		return apperr.InvalidInput("Invalid JSON")
	}
	return nil
}

func currentUserID(r *http.Request) (string, error) {
	id, ok := reqctx.GetUserID(r.Context())
	if !ok || id == "" {
		return "", apperr.Unauthorized("No token provided")
	}
	return id, nil
}
