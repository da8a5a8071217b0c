package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"studyaid/internal/apperr"
	"studyaid/internal/logger"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-flash"
	defaultTimeout = 60 * time.Second

	upstreamMessage = "Failed to get response from AI service"
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// GeminiClient вызывает generateContent. Один запрос, без ретраев, с жёстким таймаутом.
type GeminiClient struct {
	cfg        Config
	httpClient *http.Client
}

type Option func(*GeminiClient)

func WithHTTPClient(client *http.Client) Option {
	return func(c *GeminiClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func NewGeminiClient(cfg Config, opts ...Option) *GeminiClient {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := &GeminiClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apperr.InvalidInput("Prompt is required")
	}
	if c.cfg.APIKey == "" {
		return "", apperr.Upstream(upstreamMessage, errors.New("gemini: api key required"))
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	text, err := c.generateOnce(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("gemini: timed out after %s: %w", c.cfg.Timeout, err)
		}
		logger.WithCtx(ctx).Error("Ошибка запроса к Gemini", zap.String("model", c.cfg.Model), zap.Error(err))
		return "", apperr.Upstream(upstreamMessage, err)
	}
	return text, nil
}

func (c *GeminiClient) generateOnce(ctx context.Context, prompt string) (string, error) {
	endpoint, err := url.JoinPath(c.cfg.BaseURL, "models", c.cfg.Model+":generateContent")
	if err != nil {
		return "", fmt.Errorf("gemini: build url: %w", err)
	}

	encoded, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("gemini: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: http error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: read body: %w", err)
	}

	var out generateResponse
	decodeErr := json.Unmarshal(body, &out)

	if resp.StatusCode >= http.StatusMultipleChoices {
		if decodeErr == nil && out.Error != nil {
			return "", fmt.Errorf("gemini: http %d: %s", resp.StatusCode, strings.TrimSpace(out.Error.Message))
		}
		return "", fmt.Errorf("gemini: http %d: %s", resp.StatusCode, snippet(body))
	}
	if decodeErr != nil {
		return "", fmt.Errorf("gemini: decode response: %w", decodeErr)
	}
	if out.Error != nil {
		return "", fmt.Errorf("gemini: api error: %s", strings.TrimSpace(out.Error.Message))
	}

	text := extractText(out)
	logger.WithCtx(ctx).Debug("Ответ Gemini получен",
		zap.Duration("duration", time.Since(start)),
		zap.Int("chars", len(text)))
	return text, nil
}

func extractText(resp generateResponse) string {
	for _, cand := range resp.Candidates {
		var sb strings.Builder
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		if text := strings.TrimSpace(sb.String()); text != "" {
			return text
		}
	}
	return ""
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
