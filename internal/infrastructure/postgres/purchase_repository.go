package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la compra y asigna el id generado.
func (r *PurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (customer_id, book_ids, price, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, purchase.CustomerID, purchase.BookIDs, purchase.Price, purchase.CreatedAt).Scan(&purchase.ID)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// FindByCustomer compras del cliente por orden de registro.
func (r *PurchaseRepo) FindByCustomer(ctx context.Context, customerID int) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, customer_id, book_ids, price, created_at
		FROM purchases WHERE customer_id = $1 ORDER BY id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Purchase, 0)
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.BookIDs, &p.Price, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
