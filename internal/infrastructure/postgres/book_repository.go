package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)

const bookColumns = `id, name, author, price, customer_id, status, created_at, updated_at`

var bookSelect = []any{"id", "name", "author", "price", "customer_id", "status", "created_at", "updated_at"}

// BookRepo implementación de BookRepository (usable con pool o tx).
type BookRepo struct {
	q Querier
}

// NewBookRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBookRepository(q Querier) *BookRepo {
	return &BookRepo{q: q}
}

// Create persiste un libro y asigna el id generado.
func (r *BookRepo) Create(ctx context.Context, book *entity.Book) error {
	query := `
		INSERT INTO books (name, author, price, customer_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		book.Name, book.Author, book.Price, book.CustomerID, string(book.Status), book.CreatedAt, book.UpdatedAt,
	).Scan(&book.ID)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// Update sobrescribe el registro completo (save).
func (r *BookRepo) Update(ctx context.Context, book *entity.Book) error {
	query := `
		UPDATE books SET name = $2, author = $3, price = $4, customer_id = $5, status = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		book.ID, book.Name, book.Author, book.Price, book.CustomerID, string(book.Status), book.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update book: id %d inexistente", book.ID)
	}
	return nil
}

// SaveAll actualiza todos los libros en una sola sentencia: se aplican todos o ninguno.
func (r *BookRepo) SaveAll(ctx context.Context, books []*entity.Book) error {
	if len(books) == 0 {
		return nil
	}
	ids, names, authors, prices, statuses := saveAllArgs(books)
	query := `
		UPDATE books AS b
		SET name = v.name, author = v.author, price = v.price, status = v.status, updated_at = now()
		FROM (
			SELECT unnest($1::int[]) AS id, unnest($2::text[]) AS name, unnest($3::text[]) AS author,
			       unnest($4::numeric[]) AS price, unnest($5::text[]) AS status
		) AS v
		WHERE b.id = v.id`
	tag, err := r.q.Exec(ctx, query, ids, names, authors, prices, statuses)
	if err != nil {
		return fmt.Errorf("save books: %w", err)
	}
	if tag.RowsAffected() != int64(len(books)) {
		return fmt.Errorf("save books: %d de %d libros actualizados", tag.RowsAffected(), len(books))
	}
	return nil
}

// saveAllArgs columnas para unnest; los precios van como []decimal.Decimal (codec pgxdecimal).
func saveAllArgs(books []*entity.Book) (ids []int, names, authors []string, prices []decimal.Decimal, statuses []string) {
	ids = make([]int, len(books))
	names = make([]string, len(books))
	authors = make([]string, len(books))
	prices = make([]decimal.Decimal, len(books))
	statuses = make([]string, len(books))
	for i, b := range books {
		ids[i] = b.ID
		names[i] = b.Name
		authors[i] = b.Author
		prices[i] = b.Price
		statuses[i] = string(b.Status)
	}
	return ids, names, authors, prices, statuses
}

// FindByID obtiene un libro por ID.
func (r *BookRepo) FindByID(ctx context.Context, id int) (*entity.Book, error) {
	b, err := scanBook(r.q.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

// FindAll lista libros en cualquier estado, ordenados por id.
func (r *BookRepo) FindAll(ctx context.Context, page repository.PageRequest) (repository.Page[*entity.Book], error) {
	return r.page(ctx, booksByStatus(""), page)
}

// FindByStatus lista libros en el estado dado.
func (r *BookRepo) FindByStatus(ctx context.Context, status entity.BookStatus, page repository.PageRequest) (repository.Page[*entity.Book], error) {
	return r.page(ctx, booksByStatus(status), page)
}

func (r *BookRepo) page(ctx context.Context, ds *goqu.SelectDataset, page repository.PageRequest) (repository.Page[*entity.Book], error) {
	page = page.Normalize()
	listSQL, listArgs, countSQL, countArgs, err := pageQueries(ds, bookSelect, page)
	if err != nil {
		return repository.Page[*entity.Book]{}, fmt.Errorf("build books query: %w", err)
	}

	var total int64
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return repository.Page[*entity.Book]{}, fmt.Errorf("count books: %w", err)
	}
	list, err := r.list(ctx, listSQL, listArgs...)
	if err != nil {
		return repository.Page[*entity.Book]{}, err
	}
	return repository.NewPage(list, total, page), nil
}

// FindByCustomer libros del cliente en cualquier estado.
func (r *BookRepo) FindByCustomer(ctx context.Context, customerID int) ([]*entity.Book, error) {
	return r.list(ctx, `SELECT `+bookColumns+` FROM books WHERE customer_id = $1 ORDER BY id`, customerID)
}

// FindAllByID libros cuyos id están en ids; los inexistentes no aparecen.
func (r *BookRepo) FindAllByID(ctx context.Context, ids []int) ([]*entity.Book, error) {
	if len(ids) == 0 {
		return []*entity.Book{}, nil
	}
	return r.list(ctx, `SELECT `+bookColumns+` FROM books WHERE id = ANY($1) ORDER BY id`, ids)
}

// DeleteAll vacía la tabla y reinicia la secuencia.
func (r *BookRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `TRUNCATE books RESTART IDENTITY`); err != nil {
		return fmt.Errorf("delete books: %w", err)
	}
	return nil
}

func (r *BookRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Book, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return list, nil
}

// booksByStatus dataset base del listado; status vacío no filtra.
func booksByStatus(status entity.BookStatus) *goqu.SelectDataset {
	ds := dialect.From("books")
	if status != "" {
		ds = ds.Where(goqu.C("status").Eq(string(status)))
	}
	return ds
}

func scanBook(row pgx.Row) (*entity.Book, error) {
	var (
		b      entity.Book
		status string
	)
	if err := row.Scan(&b.ID, &b.Name, &b.Author, &b.Price, &b.CustomerID, &status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Status = entity.BookStatus(status)
	return &b, nil
}
