package dto

// PaginaRequest paginación para listados.
type PaginaRequest struct {
	Tam    int `query:"tam"`
	Pagina int `query:"pagina"`
}

// PaginaResponse metadatos de página en respuestas. Pagina viene ya acotada a
// rango por el núcleo (nunca fuera de [0, Paginas)).
type PaginaResponse struct {
	Pagina  int `json:"pagina"`
	Paginas int `json:"paginas"`
	Total   int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
