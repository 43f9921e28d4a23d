package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
)

// PostPurchaseRequest body para comprar libros.
type PostPurchaseRequest struct {
	CustomerID int   `json:"customer_id" validate:"required,gt=0"`
	BookIDs    []int `json:"book_ids" validate:"required,min=1,dive,gt=0"`
}

// PurchaseResponse respuesta de una compra registrada.
type PurchaseResponse struct {
	ID         int             `json:"id"`
	CustomerID int             `json:"customer_id"`
	BookIDs    []int           `json:"book_ids"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ToPurchaseResponse mapea la entidad a la respuesta.
func ToPurchaseResponse(p *entity.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		BookIDs:    p.BookIDs,
		Price:      p.Price,
		CreatedAt:  p.CreatedAt,
	}
}
