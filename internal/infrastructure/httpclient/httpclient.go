package httpclient

import (
	"net/http"
	"time"
)

// HTTPClient abstrae el cliente HTTP para poder simular las descargas en los tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewDefaultClient crea el cliente HTTP real con el timeout indicado.
func NewDefaultClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}
