package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
)

// PostBookRequest body para publicar un libro.
type PostBookRequest struct {
	Name       string          `json:"name" validate:"required"`
	Author     string          `json:"author"`
	Price      decimal.Decimal `json:"price"`
	CustomerID int             `json:"customer_id" validate:"required,gt=0"`
}

// ToEntity convierte el request en un libro sin persistir.
func (r PostBookRequest) ToEntity() entity.Book {
	return entity.Book{Name: r.Name, Author: r.Author, Price: r.Price, CustomerID: r.CustomerID}
}

// PutBookRequest body para editar un libro.
type PutBookRequest struct {
	Name   string          `json:"name" validate:"required"`
	Author string          `json:"author"`
	Price  decimal.Decimal `json:"price"`
}

// ToEntity convierte el request en el libro id con los datos nuevos.
func (r PutBookRequest) ToEntity(id int) entity.Book {
	return entity.Book{ID: id, Name: r.Name, Author: r.Author, Price: r.Price}
}

// BookResponse respuesta de un libro.
type BookResponse struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Author     string          `json:"author"`
	Price      decimal.Decimal `json:"price"`
	CustomerID int             `json:"customer_id"`
	Status     string          `json:"status"`
}

// ToBookResponse mapea la entidad a la respuesta.
func ToBookResponse(b *entity.Book) BookResponse {
	return BookResponse{
		ID:         b.ID,
		Name:       b.Name,
		Author:     b.Author,
		Price:      b.Price,
		CustomerID: b.CustomerID,
		Status:     b.Status.String(),
	}
}
