package images

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/httpclient"
	"github.com/Tomas-vilte/MateReview/internal/logger"
)

var _ ports.ImageCollector = (*Fetcher)(nil)

const (
	downloadTimeout = 10 * time.Second
	maxImages       = 3
)

// Fetcher descarga las imágenes referenciadas en el cuerpo del PR.
type Fetcher struct {
	client httpclient.HTTPClient
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: httpclient.NewDefaultClient(downloadTimeout),
	}
}

func NewFetcherWithClient(client httpclient.HTTPClient) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch descarga una imagen. Cualquier status distinto de 200 o fallo de
// transporte queda como warning en el log y devuelve nil: una imagen caída
// nunca corta el análisis.
func (f *Fetcher) Fetch(ctx context.Context, imageURL string) []byte {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		logger.Warn(ctx, "no se pudo armar el request de la imagen", "url", imageURL, "error", err)
		return nil
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Warn(ctx, "no se pudo descargar la imagen", "url", imageURL, "error", err)
		return nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		logger.Warn(ctx, "descarga de imagen rechazada", "url", imageURL, "status", resp.StatusCode)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn(ctx, "no se pudo leer el cuerpo de la imagen", "url", imageURL, "error", err)
		return nil
	}

	return data
}

// DetectMIMEType infiere el tipo de imagen por la extensión de la URL.
// Cualquier sufijo desconocido (incluido .jpg) cae en image/jpeg.
func DetectMIMEType(imageURL string) string {
	lower := strings.ToLower(imageURL)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// Collect extrae las URLs del cuerpo del PR y descarga, de forma secuencial,
// hasta maxImages imágenes utilizables con su MIME type inferido.
func (f *Fetcher) Collect(ctx context.Context, description string) []models.ImagePart {
	urls := ExtractURLs(description)
	if len(urls) == 0 {
		return nil
	}

	logger.Info(ctx, "imágenes encontradas en la descripción del PR", "count", len(urls))
	if len(urls) > maxImages {
		urls = urls[:maxImages]
	}

	var parts []models.ImagePart
	for _, imageURL := range urls {
		data := f.Fetch(ctx, imageURL)
		if data == nil {
			continue
		}
		parts = append(parts, models.ImagePart{
			MIMEType: DetectMIMEType(imageURL),
			Data:     data,
		})
	}

	return parts
}
