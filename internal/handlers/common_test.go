package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studyaid/internal/apperr"
	"studyaid/internal/models"
	"studyaid/internal/reqctx"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"ok", `{"text":"hello"}`, ""},
		{"empty", ``, "Request body is empty"},
		{"broken", `{"text":`, "Invalid JSON"},
		{"trailing object", `{"text":"a"}{"text":"b"}`, "Invalid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst struct {
				Text string `json:"text"`
			}
			err := decodeJSON(httptest.NewRecorder(), r, &dst)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("неожиданная ошибка: %v", err)
				}
				if dst.Text != "hello" {
					t.Errorf("text = %q", dst.Text)
				}
				return
			}
			var e *apperr.Error
			if !errors.As(err, &e) || e.Kind != apperr.KindInvalidInput || e.Message != tt.wantErr {
				t.Fatalf("получено %v, ожидалось %q", err, tt.wantErr)
			}
		})
	}
}

func TestCurrentUserID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := currentUserID(r); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("без пользователя ожидался 401, получено %v", err)
	}

	ctx := reqctx.WithUser(context.Background(), &models.User{ID: "u-1"})
	id, err := currentUserID(r.WithContext(ctx))
	if err != nil || id != "u-1" {
		t.Fatalf("id = %q, err = %v", id, err)
	}
}
