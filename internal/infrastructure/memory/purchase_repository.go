package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo compras en memoria.
type PurchaseRepo struct {
	table
	rows []entity.Purchase
}

func (r *PurchaseRepo) Create(_ context.Context, purchase *entity.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	purchase.ID = r.newID()
	row := *purchase
	row.BookIDs = slices.Clone(purchase.BookIDs)
	r.rows = append(r.rows, row)
	return nil
}

func (r *PurchaseRepo) FindByCustomer(_ context.Context, customerID int) ([]*entity.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Purchase, 0)
	for _, p := range r.rows {
		if p.CustomerID == customerID {
			cp := p
			cp.BookIDs = slices.Clone(p.BookIDs)
			out = append(out, &cp)
		}
	}
	return out, nil
}
