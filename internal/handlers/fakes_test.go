package handlers

import (
	"context"
	"strings"
	"time"

	"smsledger/internal/models"
	"smsledger/internal/repositories"
	"smsledger/internal/services"
)

// fakeMessageRepo is an in-memory MessageRepositoryInterface for handler
// tests. Setting err makes every call fail with it.
type fakeMessageRepo struct {
	messages []models.Message
	err      error
}

func (f *fakeMessageRepo) Create(message *models.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeMessageRepo) BulkCreate(messages []models.Message) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	existing := make(map[string]bool, len(f.messages))
	for _, m := range f.messages {
		existing[m.ID] = true
	}
	stored := 0
	for _, m := range messages {
		if m.ID != "" && existing[m.ID] {
			continue
		}
		existing[m.ID] = true
		f.messages = append(f.messages, m)
		stored++
	}
	return stored, nil
}

func (f *fakeMessageRepo) GetByID(id string) (*models.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.messages {
		if f.messages[i].ID == id {
			return &f.messages[i], nil
		}
	}
	return nil, repositories.ErrMessageNotFound
}

func (f *fakeMessageRepo) GetAll() ([]models.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Message, len(f.messages))
	copy(out, f.messages)
	return out, nil
}

func (f *fakeMessageRepo) GetByAddress(address string) ([]models.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Message
	for _, m := range f.messages {
		if m.Address == address {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) Count() (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.messages)), nil
}

func (f *fakeMessageRepo) DeleteAll() (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	deleted := int64(len(f.messages))
	f.messages = nil
	return deleted, nil
}

// fakeAnalyzer returns a canned Analysis and records invalidations.
type fakeAnalyzer struct {
	analysis        *services.Analysis
	analyzeCalls    int
	invalidateCalls int
	lastMessages    []models.Message
}

func (f *fakeAnalyzer) Analyze(_ context.Context, messages []models.Message) *services.Analysis {
	f.analyzeCalls++
	f.lastMessages = messages
	if f.analysis != nil {
		return f.analysis
	}
	return &services.Analysis{Messages: messages}
}

func (f *fakeAnalyzer) Invalidate() {
	f.invalidateCalls++
}

// fakeQueryService returns a canned QueryResult.
type fakeQueryService struct {
	result    services.QueryResult
	lastQuery string
}

func (f *fakeQueryService) Answer(_ context.Context, rawQuery string, _ *services.Analysis) services.QueryResult {
	f.lastQuery = rawQuery
	return f.result
}

// fakeTokenService mints canned tokens for handler tests.
type fakeTokenService struct {
	token       string
	expiresAt   time.Time
	generateErr error
	subject     string
	validateErr error
	lastSubject string
}

func (f *fakeTokenService) GenerateToken(subject string) (string, time.Time, error) {
	f.lastSubject = subject
	if f.generateErr != nil {
		return "", time.Time{}, f.generateErr
	}
	return f.token, f.expiresAt, nil
}

func (f *fakeTokenService) ValidateToken(_ string) (string, error) {
	if f.validateErr != nil {
		return "", f.validateErr
	}
	return f.subject, nil
}

func (f *fakeTokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", services.ErrInvalidTokenFormat
	}
	return parts[1], nil
}
