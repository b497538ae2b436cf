package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumelens/internal/domain"
	"resumelens/internal/port"
)

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

// MockExtractorFactory is a mock implementation of port.ExtractorFactory.
type MockExtractorFactory struct {
	mock.Mock
}

func (m *MockExtractorFactory) ForKind(kind domain.FileKind) (port.TextExtractor, error) {
	args := m.Called(kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(port.TextExtractor), args.Error(1)
}
