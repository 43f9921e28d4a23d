package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/mercadolivro-api/internal/domain"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

type customerRow = entity.Customer

// CustomerRepo repositorio de clientes en memoria. Devuelve copias, nunca punteros internos.
type CustomerRepo struct {
	table
	byID map[int]customerRow
}

func cloneCustomer(c customerRow) *entity.Customer {
	c.Roles = slices.Clone(c.Roles)
	return &c
}

// Create asigna el id y guarda el cliente. Email duplicado -> domain.ErrDuplicate.
func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(customer.Email, 0) {
		return domain.ErrDuplicate
	}
	customer.ID = r.newID()
	r.byID[customer.ID] = *cloneCustomer(*customer)
	return nil
}

// Update reemplaza el registro existente.
func (r *CustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[customer.ID]; !ok {
		return nil
	}
	if r.emailTaken(customer.Email, customer.ID) {
		return domain.ErrDuplicate
	}
	r.byID[customer.ID] = *cloneCustomer(*customer)
	return nil
}

func (r *CustomerRepo) emailTaken(email string, exceptID int) bool {
	for id, c := range r.byID {
		if id != exceptID && c.Email == email {
			return true
		}
	}
	return false
}

// FindByID (nil, nil) si no existe.
func (r *CustomerRepo) FindByID(_ context.Context, id int) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneCustomer(c), nil
}

func (r *CustomerRepo) ExistsByID(_ context.Context, id int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok, nil
}

// FindAll página en orden de inserción.
func (r *CustomerRepo) FindAll(_ context.Context, page repository.PageRequest) (repository.Page[*entity.Customer], error) {
	return r.filter(page, func(*entity.Customer) bool { return true }), nil
}

// FindByNameContainingIgnoreCase filtra por subcadena del nombre conservando el orden relativo.
func (r *CustomerRepo) FindByNameContainingIgnoreCase(_ context.Context, name string, page repository.PageRequest) (repository.Page[*entity.Customer], error) {
	return r.filter(page, func(c *entity.Customer) bool { return containsLower(c.Name, name) }), nil
}

func (r *CustomerRepo) filter(page repository.PageRequest, keep func(*entity.Customer) bool) repository.Page[*entity.Customer] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*entity.Customer, 0, len(r.order))
	for _, id := range r.order {
		c := cloneCustomer(r.byID[id])
		if keep(c) {
			all = append(all, c)
		}
	}
	return paginate(all, page.Normalize())
}

func (r *CustomerRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.emailTaken(email, 0), nil
}

// FindByEmail (nil, nil) si no existe.
func (r *CustomerRepo) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if c := r.byID[id]; c.Email == email {
			return cloneCustomer(c), nil
		}
	}
	return nil, nil
}

func (r *CustomerRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = map[int]customerRow{}
	r.reset()
	return nil
}
