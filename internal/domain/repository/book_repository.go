package repository

import (
	"context"

	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
)

// BookRepository define el puerto de persistencia para Book.
type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	Update(ctx context.Context, book *entity.Book) error
	// SaveAll persiste en bloque los cambios (estado, datos) de libros existentes.
	SaveAll(ctx context.Context, books []*entity.Book) error
	FindByID(ctx context.Context, id int) (*entity.Book, error)
	FindAll(ctx context.Context, page PageRequest) (Page[*entity.Book], error)
	FindByStatus(ctx context.Context, status entity.BookStatus, page PageRequest) (Page[*entity.Book], error)
	FindByCustomer(ctx context.Context, customerID int) ([]*entity.Book, error)
	// FindAllByID omite los ids inexistentes.
	FindAllByID(ctx context.Context, ids []int) ([]*entity.Book, error)
	DeleteAll(ctx context.Context) error
}
