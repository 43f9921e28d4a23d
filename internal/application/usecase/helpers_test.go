package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercadolivro-api/internal/application/usecase"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/infrastructure/memory"
	"github.com/jhoicas/mercadolivro-api/pkg/logger"
)

// fakeHasher evita el costo de bcrypt en tests; el hash es reconocible.
type fakeHasher struct{ calls int }

func (h *fakeHasher) Hash(plain string) (string, error) {
	h.calls++
	return "hashed:" + plain, nil
}

func (h *fakeHasher) Matches(hash, plain string) bool {
	return strings.TrimPrefix(hash, "hashed:") == plain
}

type fixture struct {
	store     *memory.Store
	hasher    *fakeHasher
	books     *usecase.BookService
	customers *usecase.CustomerService
}

func newFixture() *fixture {
	store := memory.NewStore()
	hasher := &fakeHasher{}
	books := usecase.NewBookService(store.Books(), store.Customers(), logger.Nop())
	customers := usecase.NewCustomerService(store.Customers(), books, hasher, logger.Nop())
	return &fixture{store: store, hasher: hasher, books: books, customers: customers}
}

func (f *fixture) customer(t *testing.T, name, email string) *entity.Customer {
	t.Helper()
	c, err := f.customers.Create(context.Background(), entity.Customer{Name: name, Email: email, Password: "123456"})
	require.NoError(t, err)
	return c
}

func (f *fixture) book(t *testing.T, customerID int, name string) *entity.Book {
	t.Helper()
	b, err := f.books.Create(context.Background(), entity.Book{Name: name, Author: "Autor", Price: decimal.RequireFromString("10.50"), CustomerID: customerID})
	require.NoError(t, err)
	return b
}
