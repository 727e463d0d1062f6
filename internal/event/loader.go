package event

import (
	"encoding/json"
	"fmt"
	"os"

	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

type (
	// Event es el payload del webhook que disparó la action. Solo se
	// decodifican los campos que el pipeline necesita.
	Event struct {
		Action      string       `json:"action"`
		PullRequest *PullRequest `json:"pull_request"`
		Repository  *Repository  `json:"repository"`
	}

	// PullRequest es el objeto pull_request del evento.
	PullRequest struct {
		Title   string `json:"title"`
		Body    string `json:"body"`
		Number  int    `json:"number"`
		HTMLURL string `json:"html_url"`
	}

	// Repository identifica el repositorio donde se abrió el PR.
	Repository struct {
		FullName string `json:"full_name"`
	}
)

// LoadEvent lee y decodifica el archivo de evento que apunta GITHUB_EVENT_PATH.
func LoadEvent(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domainErrors.NewConfigError("GITHUB_EVENT_PATH",
			fmt.Sprintf("no se pudo leer el archivo de evento en %s", path), err)
	}

	var evt Event
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, domainErrors.NewConfigError("GITHUB_EVENT_PATH",
			"el archivo de evento no es JSON válido", err)
	}

	return &evt, nil
}

// ExtractPRDetails valida que el evento sea de pull request y arma los datos
// del PR. Título y descripción ausentes quedan como string vacío.
func ExtractPRDetails(evt *Event) (models.PRDetails, error) {
	if evt.PullRequest == nil {
		return models.PRDetails{}, domainErrors.NewUnsupportedEventError(
			"la action solo puede correr sobre eventos de pull_request")
	}

	if evt.Repository == nil || evt.Repository.FullName == "" {
		return models.PRDetails{}, domainErrors.NewExtractionError(
			"el evento no trae el nombre completo del repositorio", nil)
	}

	if evt.PullRequest.Number <= 0 {
		return models.PRDetails{}, domainErrors.NewExtractionError(
			"el evento no trae el número del PR", nil)
	}

	return models.PRDetails{
		Title:       evt.PullRequest.Title,
		Description: evt.PullRequest.Body,
		Number:      evt.PullRequest.Number,
		URL:         evt.PullRequest.HTMLURL,
		Repo:        evt.Repository.FullName,
	}, nil
}
