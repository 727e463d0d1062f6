package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Analyze pull requests with Gemini AI and post the review as a comment"

	[app_description]
	other = "CI action that reads the pull request event, asks Gemini for a two-line review and comments it back on the PR"

	[analyze_command_usage]
	other = "Run the full analysis pipeline for the triggering pull request event"

	[banner_start]
	other = "Starting PR Analysis with Gemini AI"

	[loading_context]
	other = "Loading GitHub context..."

	[extracting_details]
	other = "Extracting PR details..."

	[pr_line]
	other = "PR #{{.Number}}: {{.Title}}"

	[repo_line]
	other = "Repository: {{.Repo}}"

	[analyzing_pr]
	other = "Analyzing PR with Gemini AI..."

	[generated_analysis]
	other = "Generated Analysis:"

	[posting_comment]
	other = "Posting comment on PR..."

	[analysis_done]
	other = "PR Analysis and Comment Successfully Completed!"

	[comment_failed]
	other = "Failed to post comment on PR"

	[error_missing_api_key]
	other = "Gemini API key is not configured"

	[error_empty_response]
	other = "the AI returned an empty response"
	`
