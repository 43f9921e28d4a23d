package repository

import (
	"context"

	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// FindByID y FindByEmail devuelven (nil, nil) si no existe.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id int) (*entity.Customer, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	FindAll(ctx context.Context, page PageRequest) (Page[*entity.Customer], error)
	FindByNameContainingIgnoreCase(ctx context.Context, name string, page PageRequest) (Page[*entity.Customer], error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	// DeleteAll borra todo; solo para tests.
	DeleteAll(ctx context.Context) error
}
