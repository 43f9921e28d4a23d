package repository

import (
	"context"

	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
)

// PurchaseRepository puerto de persistencia para compras.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	FindByCustomer(ctx context.Context, customerID int) ([]*entity.Purchase, error)
}
