package errors

import "fmt"

// ConfigError representa un error de configuración: una variable de entorno
// faltante o un archivo de evento ilegible/malformado. Siempre es fatal.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// UnsupportedEventError indica que el evento que disparó la action no es un
// evento de pull request
type UnsupportedEventError struct {
	Reason string
}

func (e *UnsupportedEventError) Error() string {
	return fmt.Sprintf("evento no soportado: %s", e.Reason)
}

// NewUnsupportedEventError crea un nuevo error de evento no soportado
func NewUnsupportedEventError(reason string) *UnsupportedEventError {
	return &UnsupportedEventError{Reason: reason}
}

// ExtractionError indica que el payload del evento no tiene la estructura
// esperada para extraer los datos del PR
type ExtractionError struct {
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no se pudieron extraer los datos del PR: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("no se pudieron extraer los datos del PR: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError crea un nuevo error de extracción
func NewExtractionError(message string, err error) *ExtractionError {
	return &ExtractionError{Message: message, Err: err}
}

// AnalysisError indica que falló la invocación al modelo de IA. No se
// reintenta: el run completo se corta.
type AnalysisError struct {
	Provider string
	Err      error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("el análisis con '%s' falló: %v", e.Provider, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError crea un nuevo error de análisis
func NewAnalysisError(provider string, err error) *AnalysisError {
	return &AnalysisError{Provider: provider, Err: err}
}

// CommentError indica un fallo de transporte al crear el comentario en el PR
type CommentError struct {
	Repo     string
	PRNumber int
	Err      error
}

func (e *CommentError) Error() string {
	return fmt.Sprintf("error al publicar el comentario en el PR #%d de %s: %v", e.PRNumber, e.Repo, e.Err)
}

func (e *CommentError) Unwrap() error {
	return e.Err
}

// NewCommentError crea un nuevo error de publicación de comentario
func NewCommentError(repo string, prNumber int, err error) *CommentError {
	return &CommentError{Repo: repo, PRNumber: prNumber, Err: err}
}

// CommentRejectedError indica que GitHub rechazó la creación del comentario
// con un status distinto de 201. Se distingue del fallo de transporte
// (CommentError) para que el caller decida el exit code.
type CommentRejectedError struct {
	Repo     string
	PRNumber int
}

func (e *CommentRejectedError) Error() string {
	return fmt.Sprintf("GitHub rechazó el comentario en el PR #%d de %s", e.PRNumber, e.Repo)
}

// NewCommentRejectedError crea un nuevo error de comentario rechazado
func NewCommentRejectedError(repo string, prNumber int) *CommentRejectedError {
	return &CommentRejectedError{Repo: repo, PRNumber: prNumber}
}
