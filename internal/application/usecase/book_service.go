package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/mercadolivro-api/internal/domain"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
	"github.com/jhoicas/mercadolivro-api/pkg/logger"
)

var _ BookCascader = (*BookService)(nil)

// BookService ciclo de vida de libros. Es el único que modifica Book.Status.
type BookService struct {
	repo      repository.BookRepository
	customers repository.CustomerRepository
	log       *logger.Logger
}

// NewBookService construye el servicio. customers solo se consulta (existencia del dueño).
func NewBookService(repo repository.BookRepository, customers repository.CustomerRepository, log *logger.Logger) *BookService {
	return &BookService{repo: repo, customers: customers, log: log.Component("book_service")}
}

// List todos los libros, en cualquier estado.
func (s *BookService) List(ctx context.Context, page repository.PageRequest) (repository.Page[*entity.Book], error) {
	return s.repo.FindAll(ctx, page.Normalize())
}

// ListActive solo libros ACTIVE.
func (s *BookService) ListActive(ctx context.Context, page repository.PageRequest) (repository.Page[*entity.Book], error) {
	return s.repo.FindByStatus(ctx, entity.BookActive, page.Normalize())
}

// GetByID obtiene un libro. ML-1001 si no existe.
func (s *BookService) GetByID(ctx context.Context, id int) (*entity.Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.BookNotFound(id)
	}
	return b, nil
}

// Create persiste el libro como ACTIVE. El dueño debe existir.
func (s *BookService) Create(ctx context.Context, in entity.Book) (*entity.Book, error) {
	if err := validateBookData(in); err != nil {
		return nil, err
	}
	exists, err := s.customers.ExistsByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.CustomerNotFound(in.CustomerID)
	}
	now := time.Now()
	book := &entity.Book{
		Name:       in.Name,
		Author:     in.Author,
		Price:      in.Price,
		CustomerID: in.CustomerID,
		Status:     entity.BookActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Update cambia nombre, autor y precio. Libros SOLD o DELETED se rechazan con ML-1002;
// estado y dueño nunca cambian por esta vía.
func (s *BookService) Update(ctx context.Context, in entity.Book) error {
	stored, err := s.GetByID(ctx, in.ID)
	if err != nil {
		return err
	}
	if !stored.Editable() {
		return domain.BookInvalidStatusTransition(stored.Status)
	}
	if err := validateBookData(in); err != nil {
		return err
	}
	updated := *stored
	updated.Name = in.Name
	updated.Author = in.Author
	updated.Price = in.Price
	updated.UpdatedAt = time.Now()
	return s.repo.Update(ctx, &updated)
}

// DeleteByCustomer marca DELETED todos los libros del cliente. Los ya borrados se vuelven a marcar.
func (s *BookService) DeleteByCustomer(ctx context.Context, customer *entity.Customer) error {
	books, err := s.repo.FindByCustomer(ctx, customer.ID)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		return nil
	}
	now := time.Now()
	for _, b := range books {
		if err := b.ChangeStatus(entity.BookDeleted); err != nil {
			return err
		}
		b.UpdatedAt = now
	}
	if err := s.repo.SaveAll(ctx, books); err != nil {
		return err
	}
	s.log.Debug().Int("customer_id", customer.ID).Int("books", len(books)).Msg("libros del cliente borrados")
	return nil
}

// Delete marca un libro como DELETED.
func (s *BookService) Delete(ctx context.Context, id int) error {
	book, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	deleted := *book
	if err := deleted.ChangeStatus(entity.BookDeleted); err != nil {
		return err
	}
	deleted.UpdatedAt = time.Now()
	return s.repo.Update(ctx, &deleted)
}

// FindAllByIDs hidrata libros por id; los inexistentes se omiten en silencio.
func (s *BookService) FindAllByIDs(ctx context.Context, ids []int) ([]*entity.Book, error) {
	if len(ids) == 0 {
		return []*entity.Book{}, nil
	}
	return s.repo.FindAllByID(ctx, uniqueIDs(ids))
}

// FindAllByIDsStrict como FindAllByIDs pero falla con ML-1001 para el primer id inexistente.
func (s *BookService) FindAllByIDsStrict(ctx context.Context, ids []int) ([]*entity.Book, error) {
	books, err := s.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	found := make(map[int]struct{}, len(books))
	for _, b := range books {
		found[b.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, domain.BookNotFound(id)
		}
	}
	return books, nil
}

// Purchase marca SOLD todos los libros y los persiste en bloque.
// Un libro DELETED invalida el lote completo antes de modificar nada; SOLD -> SOLD se acepta.
func (s *BookService) Purchase(ctx context.Context, books []*entity.Book) error {
	for _, b := range books {
		if !b.Status.CanTransition(entity.BookSold) {
			return domain.BookInvalidStatusTransition(b.Status)
		}
	}
	if len(books) == 0 {
		return nil
	}
	now := time.Now()
	sold := make([]*entity.Book, len(books))
	for i, b := range books {
		cp := *b
		cp.Status = entity.BookSold
		cp.UpdatedAt = now
		sold[i] = &cp
	}
	if err := s.repo.SaveAll(ctx, sold); err != nil {
		return err
	}
	for i, b := range books {
		*b = *sold[i]
	}
	return nil
}

func validateBookData(b entity.Book) error {
	if strings.TrimSpace(b.Name) == "" {
		return domain.InvalidRequest().WithFields(domain.FieldError{Field: "name", Message: "Name must be informed"})
	}
	if b.Price.IsNegative() {
		return domain.InvalidRequest().WithFields(domain.FieldError{Field: "price", Message: "Price must not be negative"})
	}
	return nil
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
