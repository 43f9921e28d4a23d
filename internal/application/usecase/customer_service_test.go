package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercadolivro-api/internal/application/usecase"
	"github.com/jhoicas/mercadolivro-api/internal/domain"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
	"github.com/jhoicas/mercadolivro-api/internal/infrastructure/memory"
	"github.com/jhoicas/mercadolivro-api/pkg/logger"
)

func TestCustomerService_ListSinFiltro(t *testing.T) {
	f := newFixture()
	f.customer(t, "Gustavo", "gustavo@teste.com")
	f.customer(t, "Daniel", "daniel@teste.com")

	page, err := f.customers.List(context.Background(), nil, repository.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	empty := ""
	page, err = f.customers.List(context.Background(), &empty, repository.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2, "filtro vacío devuelve la página sin filtrar")
}

func TestCustomerService_ListConNombre(t *testing.T) {
	f := newFixture()
	gustavo := f.customer(t, "Gustavo", "gustavo@teste.com")
	f.customer(t, "Daniel", "daniel@teste.com")

	name := "gus"
	page, err := f.customers.List(context.Background(), &name, repository.PageRequest{})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, gustavo.ID, page.Items[0].ID)
}

func TestCustomerService_CreateHasheaPassword(t *testing.T) {
	f := newFixture()

	c, err := f.customers.Create(context.Background(), entity.Customer{Name: "Ana", Email: "ana@teste.com", Password: "123456"})
	require.NoError(t, err)

	assert.NotZero(t, c.ID)
	assert.Equal(t, "hashed:123456", c.Password)
	assert.Equal(t, entity.CustomerActive, c.Status)
	assert.Equal(t, []entity.Role{entity.RoleCustomer}, c.Roles)
	assert.Equal(t, 1, f.hasher.calls)

	stored, err := f.customers.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:123456", stored.Password)
}

func TestCustomerService_CreateConRolesElevados(t *testing.T) {
	f := newFixture()

	c, err := f.customers.Create(context.Background(), entity.Customer{
		Name: "Admin", Email: "admin@teste.com", Password: "123456",
		Roles: []entity.Role{entity.RoleAdmin, entity.RoleCustomer},
	})
	require.NoError(t, err)
	assert.True(t, c.HasRole(entity.RoleAdmin))
}

func TestCustomerService_CreateEmailDuplicado(t *testing.T) {
	f := newFixture()
	f.customer(t, "A", "a@x.com")

	available, err := f.customers.EmailAvailable(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.False(t, available)

	_, err = f.customers.Create(context.Background(), entity.Customer{Name: "B", Email: "a@x.com", Password: "123456"})
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	de, _ := domain.AsError(err)
	assert.Equal(t, "ML-0001", de.Code)
	require.Len(t, de.Fields, 1)
	assert.Equal(t, "email", de.Fields[0].Field)
}

func TestCustomerService_CreateNombreVacio(t *testing.T) {
	f := newFixture()

	_, err := f.customers.Create(context.Background(), entity.Customer{Name: "   ", Email: "a@x.com", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Zero(t, f.hasher.calls, "no se hashea si la validación falla")
}

func TestCustomerService_EmailAvailableIncluyeInactivos(t *testing.T) {
	f := newFixture()
	c := f.customer(t, "A", "a@x.com")
	require.NoError(t, f.customers.Remove(context.Background(), c.ID))

	available, err := f.customers.EmailAvailable(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.False(t, available, "no se reutiliza el email de un cliente dado de baja")

	available, err = f.customers.EmailAvailable(context.Background(), "b@x.com")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCustomerService_GetByIDNoExiste(t *testing.T) {
	f := newFixture()

	_, err := f.customers.GetByID(context.Background(), 1)

	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
	de, _ := domain.AsError(err)
	assert.Equal(t, "ML-1101", de.Code)
	assert.Equal(t, "Customer [1] not exists", de.Message)
}

func TestCustomerService_Update(t *testing.T) {
	f := newFixture()
	c := f.customer(t, "Ana", "ana@teste.com")

	err := f.customers.Update(context.Background(), entity.Customer{ID: c.ID, Name: "Gustavo", Email: "emailupdate@email.com"})
	require.NoError(t, err)

	stored, err := f.customers.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gustavo", stored.Name)
	assert.Equal(t, "emailupdate@email.com", stored.Email)
	assert.Equal(t, c.Password, stored.Password, "la contraseña no cambia")
}

func TestCustomerService_UpdateNoExiste(t *testing.T) {
	f := newFixture()

	err := f.customers.Update(context.Background(), entity.Customer{ID: 1, Name: "Gustavo", Email: "x@x.com"})

	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
	de, _ := domain.AsError(err)
	assert.Equal(t, "Customer [1] not exists", de.Message)
}

func TestCustomerService_UpdateNoReactivaInactivo(t *testing.T) {
	f := newFixture()
	c := f.customer(t, "Ana", "ana@teste.com")
	require.NoError(t, f.customers.Remove(context.Background(), c.ID))

	err := f.customers.Update(context.Background(), entity.Customer{
		ID: c.ID, Name: "Ana Maria", Email: "ana@teste.com", Status: entity.CustomerActive,
	})
	require.NoError(t, err)

	stored, err := f.customers.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", stored.Name)
	assert.Equal(t, entity.CustomerInactive, stored.Status)
}

func TestCustomerService_UpdateEmailDeOtroCliente(t *testing.T) {
	f := newFixture()
	f.customer(t, "A", "a@x.com")
	b := f.customer(t, "B", "b@x.com")

	err := f.customers.Update(context.Background(), entity.Customer{ID: b.ID, Name: "B", Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestCustomerService_RemoveEnCascada(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.customer(t, "Ana", "ana@teste.com")
	other := f.customer(t, "Bia", "bia@teste.com")
	b1 := f.book(t, c.ID, "Livro 1")
	b2 := f.book(t, c.ID, "Livro 2")
	require.NoError(t, f.books.Purchase(ctx, []*entity.Book{b2}))
	foreign := f.book(t, other.ID, "Livro 3")

	require.NoError(t, f.customers.Remove(ctx, c.ID))

	stored, err := f.customers.GetByID(ctx, c.ID)
	require.NoError(t, err, "un cliente inactivo se sigue obteniendo por id")
	assert.Equal(t, entity.CustomerInactive, stored.Status)

	for _, id := range []int{b1.ID, b2.ID} {
		b, err := f.books.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.BookDeleted, b.Status)
	}
	fb, err := f.books.GetByID(ctx, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookActive, fb.Status)
}

func TestCustomerService_RemoveNoExiste(t *testing.T) {
	cascade := &recordingCascader{}
	store := memory.NewStore()
	svc := usecase.NewCustomerService(store.Customers(), cascade, &fakeHasher{}, logger.Nop())

	err := svc.Remove(context.Background(), 1)

	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.Zero(t, cascade.calls, "sin cliente no hay cascada")
}

func TestCustomerService_RemoveCascadaFallidaDejaActivo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.customer(t, "Ana", "ana@teste.com")
	b := f.book(t, c.ID, "Livro")
	f.store.Books().FailSaveAll(errors.New("db caída"))

	err := f.customers.Remove(ctx, c.ID)
	require.Error(t, err)

	stored, err := f.customers.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerActive, stored.Status)

	// el reintento completa la baja
	f.store.Books().FailSaveAll(nil)
	require.NoError(t, f.customers.Remove(ctx, c.ID))
	stored, _ = f.customers.GetByID(ctx, c.ID)
	assert.Equal(t, entity.CustomerInactive, stored.Status)
	book, _ := f.books.GetByID(ctx, b.ID)
	assert.Equal(t, entity.BookDeleted, book.Status)
}

func TestCustomerService_RemoveEsIdempotente(t *testing.T) {
	f := newFixture()
	c := f.customer(t, "Ana", "ana@teste.com")

	require.NoError(t, f.customers.Remove(context.Background(), c.ID))
	require.NoError(t, f.customers.Remove(context.Background(), c.ID))

	stored, _ := f.customers.GetByID(context.Background(), c.ID)
	assert.Equal(t, entity.CustomerInactive, stored.Status)
}

type recordingCascader struct {
	calls int
}

func (r *recordingCascader) DeleteByCustomer(context.Context, *entity.Customer) error {
	r.calls++
	return nil
}
