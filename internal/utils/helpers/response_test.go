package helpers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyaid/internal/apperr"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("невалидный JSON: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestSuccessMergesPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Quiz generated", Envelope{"quiz": map[string]string{"id": "q1"}, "success": false})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	body := decode(t, rec)
	if body["success"] != true || body["message"] != "Quiz generated" {
		t.Errorf("body = %v", body)
	}
	if _, ok := body["quiz"]; !ok {
		t.Error("нет ключа quiz")
	}
}

func TestWriteErrorUpstreamCarriesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, apperr.Upstream("Failed to generate quiz", errors.New("quota exceeded")))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["success"] != false || body["message"] != "Failed to generate quiz" || body["error"] != "quota exceeded" {
		t.Errorf("body = %v", body)
	}
}

func TestWriteErrorStorageIsServerError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, apperr.Storage("Error saving file metadata", errors.New("insert failed")))

	body := decode(t, rec)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["message"] != "Error saving file metadata" || body["error"] != "insert failed" {
		t.Errorf("body = %v", body)
	}
}

func TestWriteErrorNoDetailForClientErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, apperr.InvalidInput("No file uploaded"))

	body := decode(t, rec)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if _, ok := body["error"]; ok {
		t.Errorf("лишнее поле error: %v", body)
	}
}

func TestWriteErrorPlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("boom"))

	body := decode(t, rec)
	if rec.Code != http.StatusInternalServerError || body["message"] != "Internal server error" {
		t.Errorf("status = %d, body = %v", rec.Code, body)
	}
}
