package services

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/config"
	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/event"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/ui"
)

// AnalyzerService orquesta el pipeline completo de la action: carga del
// evento, extracción del PR, análisis con IA y publicación del comentario.
// Las etapas corren estrictamente en ese orden.
type AnalyzerService struct {
	config   *config.Config
	analyzer ports.PRAnalyzer
	poster   ports.CommentPoster
	trans    *i18n.Translations
}

func NewAnalyzerService(cfg *config.Config, analyzer ports.PRAnalyzer, poster ports.CommentPoster, trans *i18n.Translations) *AnalyzerService {
	return &AnalyzerService{
		config:   cfg,
		analyzer: analyzer,
		poster:   poster,
		trans:    trans,
	}
}

// Run ejecuta el pipeline. Cualquier error devuelto es fatal para el run;
// el tipo del error distingue la etapa que falló.
func (s *AnalyzerService) Run(ctx context.Context) error {
	ui.PrintBanner(s.trans.GetMessage("banner_start", 0, nil))

	ui.PrintStage("📂", s.trans.GetMessage("loading_context", 0, nil))
	evt, err := event.LoadEvent(s.config.EventPath)
	if err != nil {
		return err
	}

	ui.PrintStage("📝", s.trans.GetMessage("extracting_details", 0, nil))
	details, err := event.ExtractPRDetails(evt)
	if err != nil {
		return err
	}
	ui.PrintDetail(s.trans.GetMessage("pr_line", 0, map[string]interface{}{
		"Number": details.Number,
		"Title":  details.Title,
	}))
	ui.PrintDetail(s.trans.GetMessage("repo_line", 0, map[string]interface{}{
		"Repo": details.Repo,
	}))

	ui.PrintStage(ui.RobotEmoji, s.trans.GetMessage("analyzing_pr", 0, nil))
	analysis, err := s.analyzer.AnalyzePR(ctx, details)
	if err != nil {
		return err
	}

	ui.PrintStage("📤", s.trans.GetMessage("generated_analysis", 0, nil))
	ui.PrintBlock(analysis)

	ui.PrintStage("💬", s.trans.GetMessage("posting_comment", 0, nil))
	ok, err := s.poster.PostComment(ctx, details.Repo, details.Number, analysis)
	if err != nil {
		return err
	}
	if !ok {
		ui.PrintError(s.trans.GetMessage("comment_failed", 0, nil))
		return domainErrors.NewCommentRejectedError(details.Repo, details.Number)
	}

	ui.PrintSuccess(s.trans.GetMessage("analysis_done", 0, nil))
	return nil
}
