package models

type (
	// PRDetails contiene la información extraída del evento de pull request.
	// Se construye una sola vez por ejecución y no se modifica después.
	PRDetails struct {
		Title       string
		Description string
		Number      int
		URL         string
		Repo        string
	}

	// ImagePart es una imagen descargada del cuerpo del PR, lista para
	// enviarse al modelo con su MIME type inferido.
	ImagePart struct {
		MIMEType string
		Data     []byte
	}
)
