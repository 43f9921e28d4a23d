package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/mercadolivro-api/internal/application/ports"
	"github.com/jhoicas/mercadolivro-api/internal/domain"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
	"github.com/jhoicas/mercadolivro-api/pkg/logger"
)

// BookCascader lo que el ciclo de vida del cliente necesita de los libros al darlo de baja.
// Lo implementa *BookService.
type BookCascader interface {
	DeleteByCustomer(ctx context.Context, customer *entity.Customer) error
}

// CustomerService ciclo de vida de clientes: alta, edición, baja lógica con cascada a libros.
// Es el único que modifica Customer.Status.
type CustomerService struct {
	repo   repository.CustomerRepository
	books  BookCascader
	hasher ports.PasswordHasher
	log    *logger.Logger
}

// NewCustomerService construye el servicio.
func NewCustomerService(repo repository.CustomerRepository, books BookCascader, hasher ports.PasswordHasher, log *logger.Logger) *CustomerService {
	return &CustomerService{repo: repo, books: books, hasher: hasher, log: log.Component("customer_service")}
}

// List devuelve una página de clientes; con name no vacío filtra por nombre sin distinguir mayúsculas.
func (s *CustomerService) List(ctx context.Context, name *string, page repository.PageRequest) (repository.Page[*entity.Customer], error) {
	page = page.Normalize()
	if name != nil && *name != "" {
		return s.repo.FindByNameContainingIgnoreCase(ctx, *name, page)
	}
	return s.repo.FindAll(ctx, page)
}

// GetByID obtiene un cliente en cualquier estado. ML-1101 si no existe.
func (s *CustomerService) GetByID(ctx context.Context, id int) (*entity.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.CustomerNotFound(id)
	}
	return c, nil
}

// Create hashea la contraseña y persiste el cliente como ACTIVE (rol CUSTOMER si no trae roles).
func (s *CustomerService) Create(ctx context.Context, in entity.Customer) (*entity.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.InvalidRequest().WithFields(domain.FieldError{Field: "name", Message: "Name must be informed"})
	}
	if in.Password == "" {
		return nil, domain.InvalidRequest().WithFields(domain.FieldError{Field: "password", Message: "Password must be informed"})
	}
	available, err := s.EmailAvailable(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, domain.InvalidRequest().WithFields(domain.FieldError{Field: "email", Message: "Email already registered"})
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now()
	customer := &entity.Customer{
		Name:      in.Name,
		Email:     in.Email,
		Password:  hash,
		Status:    entity.CustomerActive,
		Roles:     slices.Clone(in.Roles),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(customer.Roles) == 0 {
		customer.Roles = []entity.Role{entity.RoleCustomer}
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.InvalidRequest().
				WithFields(domain.FieldError{Field: "email", Message: "Email already registered"}).
				Wrap(err)
		}
		return nil, err
	}
	s.log.Info().Int("customer_id", customer.ID).Msg("cliente creado")
	return customer, nil
}

// Update sobrescribe nombre y email. Estado, roles y contraseña se conservan del registro guardado,
// así un cliente INACTIVE no se reactiva por esta vía.
func (s *CustomerService) Update(ctx context.Context, in entity.Customer) error {
	stored, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return err
	}
	if stored == nil {
		return domain.CustomerNotFound(in.ID)
	}
	if strings.TrimSpace(in.Name) == "" {
		return domain.InvalidRequest().WithFields(domain.FieldError{Field: "name", Message: "Name must be informed"})
	}
	if in.Email != stored.Email {
		available, err := s.EmailAvailable(ctx, in.Email)
		if err != nil {
			return err
		}
		if !available {
			return domain.InvalidRequest().WithFields(domain.FieldError{Field: "email", Message: "Email already registered"})
		}
	}

	updated := *stored
	updated.Name = in.Name
	updated.Email = in.Email
	updated.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.InvalidRequest().Wrap(err)
		}
		return err
	}
	return nil
}

// Remove baja lógica: primero borra los libros del cliente y recién después lo marca INACTIVE.
// Si la cascada falla, el cliente queda ACTIVE y un reintento completa la operación.
func (s *CustomerService) Remove(ctx context.Context, id int) error {
	customer, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.books.DeleteByCustomer(ctx, customer); err != nil {
		s.log.Error().Err(err).Int("customer_id", id).Msg("cascada de libros fallida, cliente sigue activo")
		return fmt.Errorf("remove customer %d: %w", id, err)
	}

	removed := *customer
	removed.Status = entity.CustomerInactive
	removed.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, &removed); err != nil {
		return err
	}
	s.log.Info().Int("customer_id", id).Msg("cliente dado de baja")
	return nil
}

// EmailAvailable true si ningún cliente (en cualquier estado) usa el email.
func (s *CustomerService) EmailAvailable(ctx context.Context, email string) (bool, error) {
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
