package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockIssuesService struct {
	mock.Mock
}

func (m *MockIssuesService) CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, comment)
	var created *github.IssueComment
	if args.Get(0) != nil {
		created = args.Get(0).(*github.IssueComment)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return created, resp, args.Error(2)
}
