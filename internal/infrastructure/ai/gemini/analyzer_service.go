package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/config"
	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ ports.PRAnalyzer = (*GeminiAnalyzer)(nil)

type GeminiAnalyzer struct {
	client *genai.Client
	model  *genai.GenerativeModel
	config *config.Config
	images ports.ImageCollector
	trans  *i18n.Translations
}

func NewGeminiAnalyzer(ctx context.Context, cfg *config.Config, images ports.ImageCollector, trans *i18n.Translations) (*GeminiAnalyzer, error) {
	if cfg.GeminiAPIKey == "" {
		msg := trans.GetMessage("error_missing_api_key", 0, nil)
		return nil, fmt.Errorf("%s", msg)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)

	return &GeminiAnalyzer{
		client: client,
		model:  model,
		config: cfg,
		images: images,
		trans:  trans,
	}, nil
}

// AnalyzePR arma el prompt con los datos del PR, junta hasta 3 imágenes de
// la descripción y le pide al modelo el análisis de dos líneas. Cualquier
// fallo del modelo corta el run; no hay reintentos.
func (ga *GeminiAnalyzer) AnalyzePR(ctx context.Context, details models.PRDetails) (string, error) {
	prompt := ga.generateAnalysisPrompt(details)

	parts := []genai.Part{genai.Text(prompt)}
	for _, img := range ga.images.Collect(ctx, details.Description) {
		parts = append(parts, genai.Blob{
			MIMEType: img.MIMEType,
			Data:     img.Data,
		})
	}
	if len(parts) > 1 {
		logger.Info(ctx, "analizando el PR con imágenes adjuntas", "count", len(parts)-1)
	}

	resp, err := ga.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", domainErrors.NewAnalysisError("gemini", err)
	}

	analysis := strings.TrimSpace(formatResponse(resp))
	if analysis == "" {
		msg := ga.trans.GetMessage("error_empty_response", 0, nil)
		return "", domainErrors.NewAnalysisError("gemini", fmt.Errorf("%s", msg))
	}

	return analysis, nil
}

func (ga *GeminiAnalyzer) generateAnalysisPrompt(details models.PRDetails) string {
	template := ai.GetAnalysisPromptTemplate(ga.config.Language)
	return fmt.Sprintf(template, details.Title, details.Description, details.Repo)
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				formattedContent.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return formattedContent.String()
}
