package ports

import "context"

// CommentPoster define los métodos para publicar el análisis en el proveedor VCS.
type CommentPoster interface {
	// PostComment crea un comentario en el PR indicado. Devuelve true si el
	// proveedor respondió 201; false si lo rechazó con cualquier otro status.
	// Un fallo de transporte devuelve error.
	PostComment(ctx context.Context, repo string, prNumber int, analysis string) (bool, error)
}
