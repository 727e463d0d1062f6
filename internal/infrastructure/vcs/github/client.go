package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	github_ratelimit "github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.CommentPoster = (*GitHubClient)(nil)

// IssuesService expone las operaciones de go-github que usa el cliente,
// para poder mockearlas en los tests.
type IssuesService interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}

type GitHubClient struct {
	issuesService IssuesService
	trans         *i18n.Translations
}

const commentHeader = "🤖 **AI Analysis:**"

// NewGitHubClient crea el cliente real contra la API de GitHub, con el token
// de la action y manejo automático de rate limit en el transport.
func NewGitHubClient(token string, trans *i18n.Translations) *GitHubClient {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := github_ratelimit.NewClient(&oauth2.Transport{Source: ts})

	client := github.NewClient(httpClient)
	return &GitHubClient{
		issuesService: client.Issues,
		trans:         trans,
	}
}

func NewGitHubClientWithServices(issuesService IssuesService, trans *i18n.Translations) *GitHubClient {
	return &GitHubClient{
		issuesService: issuesService,
		trans:         trans,
	}
}

// PostComment publica el análisis como comentario del PR. Devuelve true si
// GitHub respondió 201; cualquier otro status queda en el log y devuelve
// false sin error. Un fallo de transporte sí devuelve error.
func (ghc *GitHubClient) PostComment(ctx context.Context, repo string, prNumber int, analysis string) (bool, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return false, domainErrors.NewCommentError(repo, prNumber, err)
	}

	body := fmt.Sprintf("%s\n\n%s", commentHeader, analysis)
	comment := &github.IssueComment{Body: github.Ptr(body)}

	created, resp, err := ghc.issuesService.CreateComment(ctx, owner, name, prNumber, comment)
	if err != nil {
		if resp == nil {
			return false, domainErrors.NewCommentError(repo, prNumber, err)
		}
		logger.Error(ctx, "GitHub rechazó la creación del comentario", err,
			"status", resp.StatusCode, "pr", prNumber)
		return false, nil
	}

	if resp.StatusCode != http.StatusCreated {
		logger.Warn(ctx, "status inesperado al crear el comentario",
			"status", resp.StatusCode, "pr", prNumber)
		return false, nil
	}

	logger.Info(ctx, "comentario creado en el PR", "comment_id", created.GetID(), "pr", prNumber)
	return true, nil
}

func splitRepo(repo string) (string, string, error) {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("nombre de repositorio inválido: %q", repo)
	}
	return parts[0], parts[1], nil
}
