package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumelens/internal/domain"
	"resumelens/internal/service"
)

// MockResumeService is a mock implementation of service.ResumeService.
type MockResumeService struct {
	mock.Mock
}

func (m *MockResumeService) Analyze(ctx context.Context, input service.AnalyzeInput) (*domain.AnalysisResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResult), args.Error(1)
}
