package ports

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// ImageCollector junta las imágenes referenciadas en el cuerpo del PR para
// el análisis multimodal. Las descargas que fallan se descartan sin error.
type ImageCollector interface {
	Collect(ctx context.Context, description string) []models.ImagePart
}
