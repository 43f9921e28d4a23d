package billing

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercadolivro-api/internal/application/dto"
	"github.com/jhoicas/mercadolivro-api/internal/application/usecase"
	"github.com/jhoicas/mercadolivro-api/internal/domain"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
	"github.com/jhoicas/mercadolivro-api/pkg/logger"
)

// PurchaseUseCase registra compras: marca los libros SOLD y guarda la compra en una sola transacción.
type PurchaseUseCase struct {
	txRunner     PurchaseTxRunner
	customerRepo repository.CustomerRepository
	purchaseRepo repository.PurchaseRepository
	log          *logger.Logger
}

// NewPurchaseUseCase construye el caso de uso. purchaseRepo se usa solo para lecturas fuera de la tx.
func NewPurchaseUseCase(
	txRunner PurchaseTxRunner,
	customerRepo repository.CustomerRepository,
	purchaseRepo repository.PurchaseRepository,
	log *logger.Logger,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		purchaseRepo: purchaseRepo,
		log:          log.Component("purchase_usecase"),
	}
}

// Purchase compra los libros indicados para el cliente. El precio de la compra es la suma de los libros.
func (uc *PurchaseUseCase) Purchase(ctx context.Context, in dto.PostPurchaseRequest) (*entity.Purchase, error) {
	if len(in.BookIDs) == 0 {
		return nil, domain.InvalidRequest().WithFields(domain.FieldError{Field: "book_ids", Message: "At least one book must be informed"})
	}
	customer, err := uc.customerRepo.FindByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.CustomerNotFound(in.CustomerID)
	}

	var purchase *entity.Purchase
	err = uc.txRunner.RunPurchase(ctx, func(bookRepo repository.BookRepository, purchaseRepo repository.PurchaseRepository) error {
		books := usecase.NewBookService(bookRepo, uc.customerRepo, uc.log)

		items, err := books.FindAllByIDsStrict(ctx, in.BookIDs)
		if err != nil {
			return err
		}
		if err := books.Purchase(ctx, items); err != nil {
			return err
		}

		total := decimal.Zero
		ids := make([]int, 0, len(items))
		for _, b := range items {
			total = total.Add(b.Price)
			ids = append(ids, b.ID)
		}
		slices.Sort(ids)
		p := &entity.Purchase{
			CustomerID: customer.ID,
			BookIDs:    ids,
			Price:      total,
			CreatedAt:  time.Now(),
		}
		if err := purchaseRepo.Create(ctx, p); err != nil {
			return err
		}
		purchase = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Int("purchase_id", purchase.ID).
		Int("customer_id", purchase.CustomerID).
		Str("price", purchase.Price.StringFixed(2)).
		Msg("compra registrada")
	return purchase, nil
}

// ListByCustomer compras del cliente, en orden de registro.
func (uc *PurchaseUseCase) ListByCustomer(ctx context.Context, customerID int) ([]*entity.Purchase, error) {
	exists, err := uc.customerRepo.ExistsByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.CustomerNotFound(customerID)
	}
	return uc.purchaseRepo.FindByCustomer(ctx, customerID)
}
