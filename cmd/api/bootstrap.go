package main

import (
	"context"

	"github.com/jhoicas/mercadolivro-api/internal/application/usecase"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/pkg/config"
	"github.com/jhoicas/mercadolivro-api/pkg/logger"
)

// bootstrapAdmin crea el administrador inicial (ADMIN_EMAIL/ADMIN_PASSWORD) si el email está libre.
func bootstrapAdmin(ctx context.Context, svc *usecase.CustomerService, cfg config.AdminConfig, log *logger.Logger) error {
	if !cfg.Enabled() {
		return nil
	}
	available, err := svc.EmailAvailable(ctx, cfg.Email)
	if err != nil {
		return err
	}
	if !available {
		log.Debug().Str("email", cfg.Email).Msg("administrador inicial ya existe")
		return nil
	}
	admin, err := svc.Create(ctx, entity.Customer{
		Name:     cfg.Name,
		Email:    cfg.Email,
		Password: cfg.Password,
		Roles:    []entity.Role{entity.RoleAdmin, entity.RoleCustomer},
	})
	if err != nil {
		return err
	}
	log.Info().Int("customer_id", admin.ID).Msg("administrador inicial creado")
	return nil
}
