package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercadolivro-api/internal/domain"
)

// BookStatus estado del libro. SOLD y DELETED restringen las operaciones posteriores.
type BookStatus string

const (
	BookActive  BookStatus = "ACTIVE"
	BookSold    BookStatus = "SOLD"
	BookDeleted BookStatus = "DELETED"
)

func (s BookStatus) String() string { return string(s) }

// transiciones permitidas: origen -> destinos.
var bookTransitions = map[BookStatus][]BookStatus{
	BookActive:  {BookActive, BookSold, BookDeleted},
	BookSold:    {BookSold, BookDeleted},
	BookDeleted: {BookDeleted},
}

// CanTransition informa si el libro puede pasar de s a to.
func (s BookStatus) CanTransition(to BookStatus) bool {
	for _, allowed := range bookTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Book libro publicado por un cliente. CustomerID referencia al dueño, no controla su ciclo de vida.
type Book struct {
	ID         int
	Name       string
	Author     string
	Price      decimal.Decimal
	CustomerID int
	Status     BookStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ChangeStatus aplica la máquina de estados. Devuelve ML-1002 con el estado actual si no se permite.
func (b *Book) ChangeStatus(to BookStatus) error {
	if !b.Status.CanTransition(to) {
		return domain.BookInvalidStatusTransition(b.Status)
	}
	b.Status = to
	return nil
}

// Editable solo los libros activos aceptan cambios de nombre, autor o precio.
func (b *Book) Editable() bool {
	return b.Status == BookActive
}
