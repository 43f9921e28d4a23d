package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mercadolivro-api/internal/application/usecase"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
	"github.com/jhoicas/mercadolivro-api/internal/infrastructure/memory"
	"github.com/jhoicas/mercadolivro-api/internal/infrastructure/security"
	"github.com/jhoicas/mercadolivro-api/pkg/config"
	"github.com/jhoicas/mercadolivro-api/pkg/logger"
)

func TestBootstrapAdmin(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	books := usecase.NewBookService(store.Books(), store.Customers(), logger.Nop())
	svc := usecase.NewCustomerService(store.Customers(), books, security.NewBcryptHasher(bcrypt.MinCost), logger.Nop())
	cfg := config.AdminConfig{Name: "admin", Email: "admin@mercadolivro.com", Password: "secret"}

	require.NoError(t, bootstrapAdmin(ctx, svc, cfg, logger.Nop()))
	require.NoError(t, bootstrapAdmin(ctx, svc, cfg, logger.Nop()), "segunda ejecución no duplica")

	admin, err := store.Customers().FindByEmail(ctx, cfg.Email)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.HasRole(entity.RoleAdmin))
	assert.True(t, admin.HasRole(entity.RoleCustomer))

	page, err := svc.List(ctx, nil, repository.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalItems)
}

func TestBootstrapAdmin_Deshabilitado(t *testing.T) {
	store := memory.NewStore()
	svc := usecase.NewCustomerService(store.Customers(), nil, security.NewBcryptHasher(bcrypt.MinCost), logger.Nop())

	require.NoError(t, bootstrapAdmin(context.Background(), svc, config.AdminConfig{}, logger.Nop()))

	exists, err := store.Customers().ExistsByID(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, exists)
}
