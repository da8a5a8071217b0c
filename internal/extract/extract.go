// Package extract превращает загруженный файл в простой текст для промпта.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"studyaid/internal/apperr"
	"studyaid/internal/logger"
	"studyaid/internal/models"
	"studyaid/internal/storage"

	"go.uber.org/zap"
)

// Extractor превращает файл в простой текст.
type Extractor interface {
	Extract(ctx context.Context, file *models.UploadedFile) (string, error)
}

// Parser разбирает содержимое файла одного формата.
type Parser func(data []byte) (string, error)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Service читает байты через FileStore и выбирает парсер по MIME-типу или расширению.
type Service struct {
	store    storage.FileStore
	maxBytes int64
	byMIME   map[string]Parser
	byExt    map[string]Parser
}

func NewService(store storage.FileStore, maxBytes int64) *Service {
	s := &Service{
		store:    store,
		maxBytes: maxBytes,
		byMIME:   map[string]Parser{},
		byExt:    map[string]Parser{},
	}
	s.Register(PlainText, []string{"text/plain", "text/markdown", "text/csv"}, []string{".txt", ".md", ".markdown", ".csv"})
	s.Register(PDF, []string{mimePDF}, []string{".pdf"})
	s.Register(DOCX, []string{mimeDOCX}, []string{".docx"})
	s.Register(XLSX, []string{mimeXLSX}, []string{".xlsx"})
	return s
}

// Register добавляет или заменяет парсер для набора MIME-типов и расширений.
func (s *Service) Register(p Parser, mimeTypes, exts []string) {
	for _, m := range mimeTypes {
		s.byMIME[strings.ToLower(m)] = p
	}
	for _, e := range exts {
		s.byExt[strings.ToLower(e)] = p
	}
}

func (s *Service) parserFor(file *models.UploadedFile) (Parser, bool) {
	if mt, _, err := mime.ParseMediaType(file.FileType); err == nil {
		if p, ok := s.byMIME[strings.ToLower(mt)]; ok {
			return p, true
		}
	}
	p, ok := s.byExt[strings.ToLower(filepath.Ext(file.FileName))]
	return p, ok
}

func (s *Service) Extract(ctx context.Context, file *models.UploadedFile) (string, error) {
	parse, ok := s.parserFor(file)
	if !ok {
		return "", apperr.InvalidInput("Unsupported file type for text extraction")
	}

	rc, err := s.store.Open(ctx, file.FilePath)
	if errors.Is(err, storage.ErrNotFound) {
		return "", apperr.NotFound("File not found on server")
	}
	if err != nil {
		return "", apperr.Storage("Error retrieving file", err)
	}
	defer rc.Close()

	limit := s.maxBytes
	if limit <= 0 {
		limit = file.FileSize
	}
	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return "", apperr.Storage("Error retrieving file", err)
	}
	if int64(len(data)) > limit {
		return "", apperr.InvalidInput("File is too large for text extraction")
	}

	text, err := parse(data)
	if err != nil {
		logger.WithCtx(ctx).Warn("Не удалось извлечь текст из файла",
			zap.String("file_id", file.ID), zap.String("type", file.FileType), zap.Error(err))
		return "", apperr.InvalidInput(fmt.Sprintf("Could not read text from %q", file.FileName))
	}
	return normalize(text), nil
}

// PlainText принимает только валидный UTF-8 (BOM отбрасывается).
func PlainText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return "", fmt.Errorf("text is not valid utf-8")
	}
	return string(data), nil
}

// normalize схлопывает пустые строки и пробелы по краям строк.
func normalize(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
