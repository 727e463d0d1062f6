package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	t.Run("debería incluir el campo y el error envuelto", func(t *testing.T) {
		underlying := fmt.Errorf("file not found")
		err := NewConfigError("GITHUB_EVENT_PATH", "no se pudo leer el archivo", underlying)

		assert.Contains(t, err.Error(), "GITHUB_EVENT_PATH")
		assert.Contains(t, err.Error(), "file not found")
		assert.Equal(t, underlying, errors.Unwrap(err))
	})

	t.Run("debería funcionar sin error envuelto", func(t *testing.T) {
		err := NewConfigError("GITHUB_TOKEN", "la variable de entorno no está definida", nil)

		assert.Contains(t, err.Error(), "GITHUB_TOKEN")
		assert.Nil(t, errors.Unwrap(err))
	})
}

func TestUnsupportedEventError(t *testing.T) {
	err := NewUnsupportedEventError("no hay pull_request en el evento")

	assert.Contains(t, err.Error(), "evento no soportado")
	assert.Contains(t, err.Error(), "pull_request")
}

func TestAnalysisError(t *testing.T) {
	underlying := fmt.Errorf("quota exceeded")
	err := NewAnalysisError("gemini", underlying)

	assert.Contains(t, err.Error(), "gemini")
	assert.Equal(t, underlying, errors.Unwrap(err))
}

func TestCommentErrors(t *testing.T) {
	t.Run("el error de transporte debería envolver la causa", func(t *testing.T) {
		underlying := fmt.Errorf("connection refused")
		err := NewCommentError("acme/repo", 42, underlying)

		assert.Contains(t, err.Error(), "acme/repo")
		assert.Contains(t, err.Error(), "#42")
		assert.Equal(t, underlying, errors.Unwrap(err))
	})

	t.Run("el rechazo debería distinguirse del fallo de transporte", func(t *testing.T) {
		rejected := NewCommentRejectedError("acme/repo", 42)

		var transportErr *CommentError
		assert.False(t, errors.As(rejected, &transportErr))
		assert.Contains(t, rejected.Error(), "#42")
	})
}
