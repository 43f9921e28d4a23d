package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mercadolivro-api/internal/application/auth"
	"github.com/jhoicas/mercadolivro-api/internal/application/billing"
	"github.com/jhoicas/mercadolivro-api/internal/application/usecase"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/infrastructure/memory"
	"github.com/jhoicas/mercadolivro-api/internal/infrastructure/security"
	apphttp "github.com/jhoicas/mercadolivro-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/mercadolivro-api/pkg/jwt"
	"github.com/jhoicas/mercadolivro-api/pkg/logger"
)

// testEnv app completa (router + servicios) sobre el almacenamiento en memoria.
type testEnv struct {
	app       *fiber.App
	store     *memory.Store
	customers *usecase.CustomerService
	books     *usecase.BookService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := logger.Nop()
	store := memory.NewStore()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	books := usecase.NewBookService(store.Books(), store.Customers(), log)
	customers := usecase.NewCustomerService(store.Customers(), books, hasher, log)
	purchases := billing.NewPurchaseUseCase(memory.NewTxRunner(store), store.Customers(), store.Purchases(), log)
	authUC := auth.NewAuthUseCase(store.Customers(), hasher, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, log)

	app := apphttp.NewApp("mercadolivro-test", log)
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerSvc: customers,
		BookSvc:     books,
		PurchaseUC:  purchases,
		AuthUC:      authUC,
		JWTSecret:   testJWTSecret,
	})
	return &testEnv{app: app, store: store, customers: customers, books: books}
}

// customer crea un cliente ACTIVE con los roles dados (CUSTOMER si no se indican).
func (e *testEnv) customer(t *testing.T, name, email string, roles ...entity.Role) *entity.Customer {
	t.Helper()
	c, err := e.customers.Create(context.Background(), entity.Customer{Name: name, Email: email, Password: "123456", Roles: roles})
	require.NoError(t, err)
	return c
}

func (e *testEnv) admin(t *testing.T) *entity.Customer {
	t.Helper()
	return e.customer(t, "Admin", "admin@teste.com", entity.RoleAdmin, entity.RoleCustomer)
}

func (e *testEnv) book(t *testing.T, owner *entity.Customer, name, price string) *entity.Book {
	t.Helper()
	b, err := e.books.Create(context.Background(), entity.Book{Name: name, Author: "Autor", Price: decimal.RequireFromString(price), CustomerID: owner.ID})
	require.NoError(t, err)
	return b
}

// bearer genera el header Authorization para el cliente.
func bearer(t *testing.T, c *entity.Customer) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, c.ID, c.RoleNames(), testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// do lanza una petición con body JSON opcional y devuelve la respuesta.
func (e *testEnv) do(t *testing.T, method, path string, body any, authHeader string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
