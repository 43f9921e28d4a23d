package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)

type bookRow = entity.Book

// BookRepo repositorio de libros en memoria.
type BookRepo struct {
	table
	byID map[int]bookRow

	// failSaveAll hace fallar SaveAll; permite probar cascadas interrumpidas.
	failSaveAll error
}

func cloneBook(b bookRow) *entity.Book { return &b }

// FailSaveAll hace que las próximas llamadas a SaveAll devuelvan err (nil restablece).
func (r *BookRepo) FailSaveAll(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failSaveAll = err
}

func (r *BookRepo) Create(_ context.Context, book *entity.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	book.ID = r.newID()
	r.byID[book.ID] = *book
	return nil
}

func (r *BookRepo) Update(_ context.Context, book *entity.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[book.ID]; !ok {
		return fmt.Errorf("update book: id %d inexistente", book.ID)
	}
	r.byID[book.ID] = *book
	return nil
}

// SaveAll todo o nada: valida todos los ids antes de escribir.
func (r *BookRepo) SaveAll(_ context.Context, books []*entity.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSaveAll != nil {
		return r.failSaveAll
	}
	for _, b := range books {
		if _, ok := r.byID[b.ID]; !ok {
			return fmt.Errorf("save books: id %d inexistente", b.ID)
		}
	}
	for _, b := range books {
		r.byID[b.ID] = *b
	}
	return nil
}

func (r *BookRepo) FindByID(_ context.Context, id int) (*entity.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneBook(b), nil
}

func (r *BookRepo) FindAll(_ context.Context, page repository.PageRequest) (repository.Page[*entity.Book], error) {
	return paginate(r.collect(func(*entity.Book) bool { return true }), page.Normalize()), nil
}

func (r *BookRepo) FindByStatus(_ context.Context, status entity.BookStatus, page repository.PageRequest) (repository.Page[*entity.Book], error) {
	return paginate(r.collect(func(b *entity.Book) bool { return b.Status == status }), page.Normalize()), nil
}

func (r *BookRepo) FindByCustomer(_ context.Context, customerID int) ([]*entity.Book, error) {
	return r.collect(func(b *entity.Book) bool { return b.CustomerID == customerID }), nil
}

// FindAllByID en orden de inserción; omite ids inexistentes.
func (r *BookRepo) FindAllByID(_ context.Context, ids []int) ([]*entity.Book, error) {
	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	return r.collect(func(b *entity.Book) bool {
		_, ok := wanted[b.ID]
		return ok
	}), nil
}

func (r *BookRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = map[int]bookRow{}
	r.reset()
	return nil
}

func (r *BookRepo) collect(keep func(*entity.Book) bool) []*entity.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Book, 0)
	for _, id := range r.order {
		b := cloneBook(r.byID[id])
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
