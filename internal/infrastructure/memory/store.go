// Package memory implementa los repositorios en memoria. Se usa con DB_DRIVER=memory y en tests.
// Cada operación es atómica (mutex); entre operaciones no hay transacciones, igual que el contrato
// que los servicios asumen del almacenamiento.
package memory

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
)

// Store agrupa los repositorios en memoria que comparten estado.
type Store struct {
	customers *CustomerRepo
	books     *BookRepo
	purchases *PurchaseRepo
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{
		customers: &CustomerRepo{byID: map[int]customerRow{}},
		books:     &BookRepo{byID: map[int]bookRow{}},
		purchases: &PurchaseRepo{},
	}
}

func (s *Store) Customers() *CustomerRepo { return s.customers }
func (s *Store) Books() *BookRepo { return s.books }
func (s *Store) Purchases() *PurchaseRepo { return s.purchases }

// table secuencia de ids y orden de inserción compartidos por los repositorios.
type table struct {
	mu     sync.RWMutex
	nextID int
	order  []int
}

func (t *table) newID() int {
	t.nextID++
	t.order = append(t.order, t.nextID)
	return t.nextID
}

func (t *table) reset() {
	t.nextID = 0
	t.order = nil
}

// containsLower búsqueda de subcadena sin distinguir mayúsculas, comparando en minúsculas
// como ILIKE en PostgreSQL ("ß" no equivale a "ss"). Un Caser no se comparte entre goroutines.
func containsLower(s, substr string) bool {
	lower := cases.Lower(language.Und)
	return strings.Contains(lower.String(s), lower.String(substr))
}

func paginate[T any](all []T, page repository.PageRequest) repository.Page[T] {
	total := int64(len(all))
	from := page.Offset()
	if from < 0 || from > len(all) {
		from = len(all)
	}
	to := len(all)
	if page.Size >= 0 && page.Size < to-from {
		to = from + page.Size
	}
	items := make([]T, 0, to-from)
	items = append(items, all[from:to]...)
	return repository.NewPage(items, total, page)
}
