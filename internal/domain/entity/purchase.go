package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase registro de compra: qué libros compró un cliente y el total pagado.
type Purchase struct {
	ID         int
	CustomerID int
	BookIDs    []int
	Price      decimal.Decimal
	CreatedAt  time.Time
}
