package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/mercadolivro-api/internal/application/billing"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
)

var _ billing.PurchaseTxRunner = (*TxRunner)(nil)

// TxRunner serializa las compras sobre el almacenamiento en memoria. No hay rollback: el caso de uso
// valida el lote completo antes de escribir.
type TxRunner struct {
	mu    sync.Mutex
	store *Store
}

// NewTxRunner construye el runner sobre store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// RunPurchase ejecuta fn con los repos del store, de a una compra por vez.
func (r *TxRunner) RunPurchase(_ context.Context, fn func(
	bookRepo repository.BookRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.store.Books(), r.store.Purchases())
}
