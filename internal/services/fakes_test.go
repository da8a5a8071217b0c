package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"studyaid/internal/apperr"
	"studyaid/internal/models"
	"studyaid/internal/storage"
)

// Мок-репозитории (заглушки) в памяти.

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) IsEmailTaken(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.NotFound("User not found")
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	cp := *u
	cp.PasswordHash = ""
	return &cp, nil
}

type mockFileRepo struct {
	files   map[string]*models.UploadedFile
	saveErr error
}

func newMockFileRepo() *mockFileRepo {
	return &mockFileRepo{files: make(map[string]*models.UploadedFile)}
}

func (m *mockFileRepo) SaveFile(_ context.Context, f *models.UploadedFile) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := *f
	m.files[f.ID] = &cp
	return nil
}

func (m *mockFileRepo) GetFileByID(_ context.Context, id string) (*models.UploadedFile, error) {
	f, ok := m.files[id]
	if !ok {
		return nil, apperr.NotFound("File not found in database")
	}
	cp := *f
	return &cp, nil
}

func (m *mockFileRepo) ListFilesByUser(_ context.Context, userID string) ([]*models.UploadedFile, error) {
	out := make([]*models.UploadedFile, 0)
	for _, f := range m.files {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *mockFileRepo) CountFilesByUser(ctx context.Context, userID string) (int, error) {
	list, _ := m.ListFilesByUser(ctx, userID)
	return len(list), nil
}

type mockQuizRepo struct {
	quizzes map[string]*models.Quiz
}

func newMockQuizRepo() *mockQuizRepo {
	return &mockQuizRepo{quizzes: make(map[string]*models.Quiz)}
}

func (m *mockQuizRepo) CreateQuiz(_ context.Context, q *models.Quiz) error {
	cp := *q
	m.quizzes[q.ID] = &cp
	return nil
}

func (m *mockQuizRepo) GetQuizByID(_ context.Context, id string) (*models.Quiz, error) {
	q, ok := m.quizzes[id]
	if !ok {
		return nil, apperr.NotFound("Quiz not found")
	}
	cp := *q
	return &cp, nil
}

func (m *mockQuizRepo) ListQuizzesByUser(_ context.Context, userID string) ([]*models.Quiz, error) {
	out := make([]*models.Quiz, 0)
	for _, q := range m.quizzes {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockQuizRepo) UpdateQuiz(_ context.Context, q *models.Quiz) error {
	if _, ok := m.quizzes[q.ID]; !ok {
		return apperr.NotFound("Quiz not found")
	}
	cp := *q
	m.quizzes[q.ID] = &cp
	return nil
}

func (m *mockQuizRepo) DeleteQuiz(_ context.Context, id string) error {
	if _, ok := m.quizzes[id]; !ok {
		return apperr.NotFound("Quiz not found")
	}
	delete(m.quizzes, id)
	return nil
}

func (m *mockQuizRepo) CountQuizzesByUser(_ context.Context, userID string) (int, int, error) {
	total, completed := 0, 0
	for _, q := range m.quizzes {
		if q.UserID != userID {
			continue
		}
		total++
		if q.Completed {
			completed++
		}
	}
	return total, completed, nil
}

type mockSummaryRepo struct {
	summaries map[string]*models.Summary
}

func newMockSummaryRepo() *mockSummaryRepo {
	return &mockSummaryRepo{summaries: make(map[string]*models.Summary)}
}

func (m *mockSummaryRepo) CreateSummary(_ context.Context, s *models.Summary) error {
	cp := *s
	m.summaries[s.ID] = &cp
	return nil
}

func (m *mockSummaryRepo) GetSummaryByID(_ context.Context, id string) (*models.Summary, error) {
	s, ok := m.summaries[id]
	if !ok {
		return nil, apperr.NotFound("Summary not found")
	}
	cp := *s
	return &cp, nil
}

func (m *mockSummaryRepo) ListSummariesByUser(_ context.Context, userID string) ([]*models.Summary, error) {
	out := make([]*models.Summary, 0)
	for _, s := range m.summaries {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSummaryRepo) DeleteSummary(_ context.Context, id string) error {
	if _, ok := m.summaries[id]; !ok {
		return apperr.NotFound("Summary not found")
	}
	delete(m.summaries, id)
	return nil
}

func (m *mockSummaryRepo) CountSummariesByUser(ctx context.Context, userID string) (int, error) {
	list, _ := m.ListSummariesByUser(ctx, userID)
	return len(list), nil
}

// stubGenerator возвращает заданный ответ и запоминает промпты.
type stubGenerator struct {
	mu      sync.Mutex
	out     string
	err     error
	prompts []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	return g.out, g.err
}

func (g *stubGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

type stubExtractor struct {
	text string
	err  error
	got  *models.UploadedFile
}

func (e *stubExtractor) Extract(_ context.Context, f *models.UploadedFile) (string, error) {
	e.got = f
	return e.text, e.err
}

type memStore struct {
	files map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{files: make(map[string][]byte)}
}

func (m *memStore) Save(_ context.Context, name string, r io.Reader) (string, int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	path := "/uploads/" + name
	m.files[path] = data
	return path, int64(len(data)), nil
}

func (m *memStore) Open(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStore) Remove(_ context.Context, path string) error {
	if _, ok := m.files[path]; !ok {
		return errors.New("not found")
	}
	delete(m.files, path)
	return nil
}
