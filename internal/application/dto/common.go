package dto

import "github.com/jhoicas/mercadolivro-api/internal/domain/repository"

// PageQuery paginación para listados (?page=&size=). page empieza en 0.
type PageQuery struct {
	Page int `query:"page" validate:"min=0"`
	Size int `query:"size" validate:"min=0,max=100"`
}

// ToPageRequest aplica valores por defecto (size 10).
func (q PageQuery) ToPageRequest() repository.PageRequest {
	return repository.PageRequest{Page: q.Page, Size: q.Size}.Normalize()
}

// PageResponse página de resultados.
type PageResponse[T any] struct {
	Items       []T   `json:"items"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
}

// NewPageResponse convierte una página del repositorio con la función de mapeo dada.
func NewPageResponse[E, T any](p repository.Page[E], fn func(E) T) PageResponse[T] {
	mapped := repository.Map(p, fn)
	return PageResponse[T]{
		Items:       mapped.Items,
		TotalItems:  mapped.TotalItems,
		TotalPages:  mapped.TotalPages,
		CurrentPage: mapped.CurrentPage,
	}
}

// FieldErrorResponse detalle de validación de un campo.
type FieldErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	HTTPCode     int                  `json:"http_code"`
	Message      string               `json:"message"`
	InternalCode string               `json:"internal_code"`
	Errors       []FieldErrorResponse `json:"errors,omitempty"`
}
