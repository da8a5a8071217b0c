package app

import (
	"context"
	"sync"

	"studyaid/internal/apperr"
	"studyaid/internal/models"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func (m *memUsers) IsEmailTaken(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) CreateUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.NotFound("User not found")
}

func (m *memUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	cp := *u
	cp.PasswordHash = ""
	return &cp, nil
}

type memFiles struct {
	mu    sync.Mutex
	files map[string]*models.UploadedFile
}

func (m *memFiles) SaveFile(_ context.Context, f *models.UploadedFile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *f
	m.files[f.ID] = &cp
	return nil
}

func (m *memFiles) GetFileByID(_ context.Context, id string) (*models.UploadedFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[id]
	if !ok {
		return nil, apperr.NotFound("File not found in database")
	}
	cp := *f
	return &cp, nil
}

func (m *memFiles) ListFilesByUser(_ context.Context, userID string) ([]*models.UploadedFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.UploadedFile, 0)
	for _, f := range m.files {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFiles) CountFilesByUser(ctx context.Context, userID string) (int, error) {
	list, err := m.ListFilesByUser(ctx, userID)
	return len(list), err
}

type memQuizzes struct {
	mu      sync.Mutex
	quizzes map[string]*models.Quiz
}

func (m *memQuizzes) CreateQuiz(_ context.Context, q *models.Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *q
	m.quizzes[q.ID] = &cp
	return nil
}

func (m *memQuizzes) GetQuizByID(_ context.Context, id string) (*models.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quizzes[id]
	if !ok {
		return nil, apperr.NotFound("Quiz not found")
	}
	cp := *q
	return &cp, nil
}

func (m *memQuizzes) ListQuizzesByUser(_ context.Context, userID string) ([]*models.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Quiz, 0)
	for _, q := range m.quizzes {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memQuizzes) UpdateQuiz(_ context.Context, q *models.Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *q
	m.quizzes[q.ID] = &cp
	return nil
}

func (m *memQuizzes) DeleteQuiz(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.quizzes, id)
	return nil
}

func (m *memQuizzes) CountQuizzesByUser(ctx context.Context, userID string) (int, int, error) {
	list, _ := m.ListQuizzesByUser(ctx, userID)
	completed := 0
	for _, q := range list {
		if q.Completed {
			completed++
		}
	}
	return len(list), completed, nil
}

type memSummaries struct {
	mu        sync.Mutex
	summaries map[string]*models.Summary
}

func (m *memSummaries) CreateSummary(_ context.Context, s *models.Summary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.summaries[s.ID] = &cp
	return nil
}

func (m *memSummaries) GetSummaryByID(_ context.Context, id string) (*models.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.summaries[id]
	if !ok {
		return nil, apperr.NotFound("Summary not found")
	}
	cp := *s
	return &cp, nil
}

func (m *memSummaries) ListSummariesByUser(_ context.Context, userID string) ([]*models.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Summary, 0)
	for _, s := range m.summaries {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSummaries) DeleteSummary(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.summaries, id)
	return nil
}

func (m *memSummaries) CountSummariesByUser(ctx context.Context, userID string) (int, error) {
	list, _ := m.ListSummariesByUser(ctx, userID)
	return len(list), nil
}

type echoAI struct {
	mu    sync.Mutex
	out   string
	calls int
}

func (e *echoAI) Generate(_ context.Context, _ string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	return e.out, nil
}
