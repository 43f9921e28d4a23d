package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercadolivro-api/internal/application/billing"
	"github.com/jhoicas/mercadolivro-api/internal/application/dto"
	"github.com/jhoicas/mercadolivro-api/internal/domain"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/infrastructure/memory"
	"github.com/jhoicas/mercadolivro-api/pkg/logger"
)

type purchaseFixture struct {
	store *memory.Store
	uc    *billing.PurchaseUseCase
}

func newPurchaseFixture() *purchaseFixture {
	store := memory.NewStore()
	uc := billing.NewPurchaseUseCase(memory.NewTxRunner(store), store.Customers(), store.Purchases(), logger.Nop())
	return &purchaseFixture{store: store, uc: uc}
}

func (f *purchaseFixture) customer(t *testing.T) *entity.Customer {
	t.Helper()
	c := &entity.Customer{Name: "Ana", Email: "ana@teste.com", Password: "x", Status: entity.CustomerActive, Roles: []entity.Role{entity.RoleCustomer}}
	require.NoError(t, f.store.Customers().Create(context.Background(), c))
	return c
}

func (f *purchaseFixture) book(t *testing.T, owner int, price string, status entity.BookStatus) *entity.Book {
	t.Helper()
	b := &entity.Book{Name: "Livro", Price: decimal.RequireFromString(price), CustomerID: owner, Status: status}
	require.NoError(t, f.store.Books().Create(context.Background(), b))
	return b
}

func TestPurchase_MarcaSoldYSumaPrecio(t *testing.T) {
	f := newPurchaseFixture()
	ctx := context.Background()
	buyer := f.customer(t)
	b1 := f.book(t, buyer.ID, "10.50", entity.BookActive)
	b2 := f.book(t, buyer.ID, "4.25", entity.BookActive)

	p, err := f.uc.Purchase(ctx, dto.PostPurchaseRequest{CustomerID: buyer.ID, BookIDs: []int{b2.ID, b1.ID}})
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, []int{b1.ID, b2.ID}, p.BookIDs)
	assert.True(t, decimal.RequireFromString("14.75").Equal(p.Price), "precio %s", p.Price)

	for _, id := range []int{b1.ID, b2.ID} {
		b, err := f.store.Books().FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.BookSold, b.Status)
	}

	list, err := f.uc.ListByCustomer(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)
}

func TestPurchase_ClienteInexistente(t *testing.T) {
	f := newPurchaseFixture()

	_, err := f.uc.Purchase(context.Background(), dto.PostPurchaseRequest{CustomerID: 9, BookIDs: []int{1}})

	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestPurchase_SinLibros(t *testing.T) {
	f := newPurchaseFixture()
	buyer := f.customer(t)

	_, err := f.uc.Purchase(context.Background(), dto.PostPurchaseRequest{CustomerID: buyer.ID})

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestPurchase_LibroInexistente(t *testing.T) {
	f := newPurchaseFixture()
	ctx := context.Background()
	buyer := f.customer(t)
	b := f.book(t, buyer.ID, "1", entity.BookActive)

	_, err := f.uc.Purchase(ctx, dto.PostPurchaseRequest{CustomerID: buyer.ID, BookIDs: []int{b.ID, 42}})
	require.ErrorIs(t, err, domain.ErrBookNotFound)

	stored, _ := f.store.Books().FindByID(ctx, b.ID)
	assert.Equal(t, entity.BookActive, stored.Status)
	list, _ := f.uc.ListByCustomer(ctx, buyer.ID)
	assert.Empty(t, list)
}

func TestPurchase_LibroDeletedInvalidaElLote(t *testing.T) {
	f := newPurchaseFixture()
	ctx := context.Background()
	buyer := f.customer(t)
	active := f.book(t, buyer.ID, "1", entity.BookActive)
	deleted := f.book(t, buyer.ID, "1", entity.BookDeleted)

	_, err := f.uc.Purchase(ctx, dto.PostPurchaseRequest{CustomerID: buyer.ID, BookIDs: []int{active.ID, deleted.ID}})
	require.ErrorIs(t, err, domain.ErrBookInvalidStatusTransition)

	stored, _ := f.store.Books().FindByID(ctx, active.ID)
	assert.Equal(t, entity.BookActive, stored.Status)
}

func TestPurchase_FalloAlGuardarLibros(t *testing.T) {
	f := newPurchaseFixture()
	ctx := context.Background()
	buyer := f.customer(t)
	b := f.book(t, buyer.ID, "1", entity.BookActive)
	boom := errors.New("db caída")
	f.store.Books().FailSaveAll(boom)

	_, err := f.uc.Purchase(ctx, dto.PostPurchaseRequest{CustomerID: buyer.ID, BookIDs: []int{b.ID}})
	require.ErrorIs(t, err, boom)

	list, _ := f.uc.ListByCustomer(ctx, buyer.ID)
	assert.Empty(t, list)
}

func TestListByCustomer_Inexistente(t *testing.T) {
	f := newPurchaseFixture()

	_, err := f.uc.ListByCustomer(context.Background(), 3)

	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
