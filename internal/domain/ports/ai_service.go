package ports

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// PRAnalyzer define la interfaz del servicio que genera el análisis de un PR.
type PRAnalyzer interface {
	// AnalyzePR genera el análisis de dos líneas (evaluación + sugerencia)
	// a partir de los datos del PR y las imágenes de su descripción.
	AnalyzePR(ctx context.Context, details models.PRDetails) (string, error)
}
