package auth

import (
	"context"
	"slices"

	"github.com/jhoicas/mercadolivro-api/internal/application/dto"
	"github.com/jhoicas/mercadolivro-api/internal/application/ports"
	"github.com/jhoicas/mercadolivro-api/internal/domain"
	"github.com/jhoicas/mercadolivro-api/internal/domain/access"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
	"github.com/jhoicas/mercadolivro-api/pkg/jwt"
	"github.com/jhoicas/mercadolivro-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y carga de la identidad de un token.
type AuthUseCase struct {
	customerRepo repository.CustomerRepository
	hasher       ports.PasswordHasher
	jwtCfg       JWTConfig
	log          *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(customerRepo repository.CustomerRepository, hasher ports.PasswordHasher, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{customerRepo: customerRepo, hasher: hasher, jwtCfg: jwtCfg, log: log.Component("auth")}
}

// Login verifica email/password y genera un JWT. Email desconocido, contraseña incorrecta
// o cliente INACTIVE dan el mismo ML-2001.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	customer, err := uc.customerRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if customer == nil || !uc.hasher.Matches(customer.Password, in.Password) {
		return nil, domain.AuthenticationFailed()
	}
	if !customer.IsActive() {
		uc.log.Debug().Int("customer_id", customer.ID).Msg("login de cliente inactivo")
		return nil, domain.AuthenticationFailed()
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, customer.ID, customer.RoleNames(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresIn: uc.jwtCfg.ExpMinutes * 60}, nil
}

// LoadIdentity devuelve la identidad del cliente con los roles actuales. ML-2002 si no existe o está INACTIVE.
func (uc *AuthUseCase) LoadIdentity(ctx context.Context, customerID int) (access.Identity, error) {
	customer, err := uc.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return access.Identity{}, err
	}
	if customer == nil || !customer.IsActive() {
		return access.Identity{}, domain.UserNotFound()
	}
	return access.Identity{ID: customer.ID, Roles: slices.Clone(customer.Roles)}, nil
}
