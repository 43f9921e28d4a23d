package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/mercadolivro-api/internal/domain"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, email, password, status, roles, created_at, updated_at`

var customerSelect = []any{"id", "name", "email", "password", "status", "roles", "created_at", "updated_at"}

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y asigna el id generado.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (name, email, password, status, roles, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		customer.Name, customer.Email, customer.Password, string(customer.Status), customer.RoleNames(),
		customer.CreatedAt, customer.UpdatedAt,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update sobrescribe el registro completo (save).
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = $3, password = $4, status = $5, roles = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.Password, string(customer.Status),
		customer.RoleNames(), customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// FindByID obtiene un cliente por ID.
func (r *CustomerRepo) FindByID(ctx context.Context, id int) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists customer: %w", err)
	}
	return exists, nil
}

// FindAll lista clientes ordenados por id.
func (r *CustomerRepo) FindAll(ctx context.Context, page repository.PageRequest) (repository.Page[*entity.Customer], error) {
	return r.page(ctx, customersByName(""), page)
}

// FindByNameContainingIgnoreCase filtra por subcadena del nombre (ILIKE).
func (r *CustomerRepo) FindByNameContainingIgnoreCase(ctx context.Context, name string, page repository.PageRequest) (repository.Page[*entity.Customer], error) {
	return r.page(ctx, customersByName(name), page)
}

func (r *CustomerRepo) page(ctx context.Context, ds *goqu.SelectDataset, page repository.PageRequest) (repository.Page[*entity.Customer], error) {
	page = page.Normalize()
	listSQL, listArgs, countSQL, countArgs, err := pageQueries(ds, customerSelect, page)
	if err != nil {
		return repository.Page[*entity.Customer]{}, fmt.Errorf("build customers query: %w", err)
	}

	var total int64
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return repository.Page[*entity.Customer]{}, fmt.Errorf("count customers: %w", err)
	}
	rows, err := r.q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return repository.Page[*entity.Customer]{}, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return repository.Page[*entity.Customer]{}, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return repository.Page[*entity.Customer]{}, fmt.Errorf("list customers: %w", err)
	}
	return repository.NewPage(list, total, page), nil
}

func (r *CustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1)`, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists customer email: %w", err)
	}
	return exists, nil
}

// FindByEmail obtiene un cliente por email (login).
func (r *CustomerRepo) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by email: %w", err)
	}
	return c, nil
}

// DeleteAll vacía la tabla y reinicia la secuencia. Borra también libros y compras (FK).
func (r *CustomerRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `TRUNCATE customers RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("delete customers: %w", err)
	}
	return nil
}

// customersByName dataset base del listado; name vacío no filtra.
func customersByName(name string) *goqu.SelectDataset {
	ds := dialect.From("customers")
	if name != "" {
		ds = ds.Where(goqu.C("name").ILike(containsPattern(name)))
	}
	return ds
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var (
		c      entity.Customer
		status string
		roles  []string
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Password, &status, &roles, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Status = entity.CustomerStatus(status)
	c.Roles = make([]entity.Role, 0, len(roles))
	for _, name := range roles {
		if role, ok := entity.ParseRole(name); ok {
			c.Roles = append(c.Roles, role)
		}
	}
	return &c, nil
}
