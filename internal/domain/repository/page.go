package repository

import "math"

// Valores por defecto de paginación.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPage mantiene Page*MaxPageSize dentro de un int32.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// PageRequest página solicitada (Page empieza en 0).
type PageRequest struct {
	Page int
	Size int
}

// Normalize aplica valores por defecto y límites.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset desplazamiento en filas para LIMIT/OFFSET.
// Satura en math.MaxInt en vez de desbordar.
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// Page página de resultados con el total de elementos.
type Page[T any] struct {
	Items       []T
	TotalItems  int64
	TotalPages  int
	CurrentPage int
}

// NewPage calcula TotalPages a partir del total y el tamaño de página.
func NewPage[T any](items []T, total int64, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{Items: items, TotalItems: total, TotalPages: pages, CurrentPage: req.Page}
}

// Map convierte los elementos de la página conservando los metadatos.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, fn(it))
	}
	return Page[U]{Items: out, TotalItems: p.TotalItems, TotalPages: p.TotalPages, CurrentPage: p.CurrentPage}
}
