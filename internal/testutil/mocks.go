package testutil

import (
	"context"

	"sentencer/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSentenceProvider is a mock for provider.SentenceProvider
type MockSentenceProvider struct {
	mock.Mock
}

func (m *MockSentenceProvider) FetchSentence(ctx context.Context, word string) (domain.SentenceResult, error) {
	args := m.Called(ctx, word)
	return args.Get(0).(domain.SentenceResult), args.Error(1)
}
