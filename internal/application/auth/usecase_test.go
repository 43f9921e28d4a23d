package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mercadolivro-api/internal/application/auth"
	"github.com/jhoicas/mercadolivro-api/internal/application/dto"
	"github.com/jhoicas/mercadolivro-api/internal/domain"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/infrastructure/memory"
	"github.com/jhoicas/mercadolivro-api/internal/infrastructure/security"
	"github.com/jhoicas/mercadolivro-api/pkg/jwt"
	"github.com/jhoicas/mercadolivro-api/pkg/logger"
)

const testSecret = "test-secret"

func newAuth(t *testing.T) (*auth.AuthUseCase, *memory.Store, *entity.Customer) {
	t.Helper()
	store := memory.NewStore()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("123456")
	require.NoError(t, err)
	c := &entity.Customer{
		Name: "Ana", Email: "ana@teste.com", Password: hash,
		Status: entity.CustomerActive, Roles: []entity.Role{entity.RoleCustomer},
	}
	require.NoError(t, store.Customers().Create(context.Background(), c))
	uc := auth.NewAuthUseCase(store.Customers(), hasher, auth.JWTConfig{Secret: testSecret, ExpMinutes: 5, Issuer: "test"}, logger.Nop())
	return uc, store, c
}

func TestLogin_OK(t *testing.T) {
	uc, _, c := newAuth(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@teste.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, 300, resp.ExpiresIn)

	claims, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, c.ID, claims.CustomerID)
	assert.Equal(t, []string{"CUSTOMER"}, claims.Roles)
}

func TestLogin_Falla(t *testing.T) {
	uc, store, c := newAuth(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@teste.com", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@teste.com", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)

	c.Status = entity.CustomerInactive
	require.NoError(t, store.Customers().Update(ctx, c))
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@teste.com", Password: "123456"})
	require.ErrorIs(t, err, domain.ErrAuthenticationFailed)
	de, _ := domain.AsError(err)
	assert.Equal(t, "ML-2001", de.Code)
}

func TestLoadIdentity(t *testing.T) {
	uc, store, c := newAuth(t)
	ctx := context.Background()

	id, err := uc.LoadIdentity(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, id.ID)
	assert.False(t, id.IsAdmin())

	c.Roles = append(c.Roles, entity.RoleAdmin)
	require.NoError(t, store.Customers().Update(ctx, c))
	id, err = uc.LoadIdentity(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, id.IsAdmin(), "los roles se leen del almacenamiento")

	_, err = uc.LoadIdentity(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	c.Status = entity.CustomerInactive
	require.NoError(t, store.Customers().Update(ctx, c))
	_, err = uc.LoadIdentity(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
