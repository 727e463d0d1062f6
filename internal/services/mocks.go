package services

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockPRAnalyzer struct {
	mock.Mock
}

func (m *MockPRAnalyzer) AnalyzePR(ctx context.Context, details models.PRDetails) (string, error) {
	args := m.Called(ctx, details)
	return args.String(0), args.Error(1)
}

type MockCommentPoster struct {
	mock.Mock
}

func (m *MockCommentPoster) PostComment(ctx context.Context, repo string, prNumber int, analysis string) (bool, error) {
	args := m.Called(ctx, repo, prNumber, analysis)
	return args.Bool(0), args.Error(1)
}
