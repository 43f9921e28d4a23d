package billing

import (
	"context"

	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
)

// PurchaseTxRunner ejecuta fn dentro de una transacción con repos de libros y compras atados a ella.
// Si fn devuelve error no queda nada persistido.
type PurchaseTxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		bookRepo repository.BookRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
