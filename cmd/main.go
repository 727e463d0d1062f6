package main

import (
	"context"
	"log"
	"os"

	cfg "github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/images"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/Tomas-vilte/MateReview/internal/services"
	"github.com/Tomas-vilte/MateReview/internal/ui"
	"github.com/Tomas-vilte/MateReview/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la action: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	cfgApp, err := cfg.FromEnv()
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, err
	}

	analyzeCommand := &cli.Command{
		Name:  "analyze",
		Usage: translations.GetMessage("analyze_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.Initialize(cmd.Bool("debug"))

			fetcher := images.NewFetcher()
			analyzer, err := gemini.NewGeminiAnalyzer(ctx, cfgApp, fetcher, translations)
			if err != nil {
				return err
			}
			poster := github.NewGitHubClient(cfgApp.GithubToken, translations)

			service := services.NewAnalyzerService(cfgApp, analyzer, poster, translations)
			if err := service.Run(ctx); err != nil {
				ui.PrintError(err.Error())
				return cli.Exit("", 1)
			}
			return nil
		},
	}

	return &cli.Command{
		Name:           "matereview",
		Usage:          translations.GetMessage("app_usage", 0, nil),
		Version:        version.Version,
		Description:    translations.GetMessage("app_description", 0, nil),
		Commands:       []*cli.Command{analyzeCommand},
		DefaultCommand: "analyze",
	}, nil
}
