package book

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo is an in-process Repository. It keeps the same ISBN uniqueness
// and matching rules as PostgresRepo.
type MemoryRepo struct {
	mu    sync.RWMutex
	books map[string]Book
	now   func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		books: make(map[string]Book),
		now:   time.Now,
	}
}

func (r *MemoryRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isbnTaken(isbn, ""), nil
}

func (r *MemoryRepo) Insert(ctx context.Context, b Book) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isbnTaken(b.ISBN, "") {
		return Book{}, ErrDuplicateISBN
	}
	now := r.now().UTC()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.books[b.ID] = b
	return b, nil
}

func (r *MemoryRepo) Save(ctx context.Context, b Book) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.books[b.ID]
	if !ok {
		return Book{}, ErrNotFound
	}
	if r.isbnTaken(b.ISBN, b.ID) {
		return Book{}, ErrDuplicateISBN
	}
	current.Title = b.Title
	current.Author = b.Author
	current.ISBN = b.ISBN
	current.UpdatedAt = r.now().UTC()
	r.books[b.ID] = current
	return current, nil
}

func (r *MemoryRepo) FindByID(ctx context.Context, id string) (Book, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.books[id]
	return b, ok, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[id]; !ok {
		return ErrNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *MemoryRepo) FindPage(ctx context.Context, f Filter, p PageRequest) ([]Book, int, error) {
	r.mu.RLock()
	matched := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		if f.matches(b) {
			matched = append(matched, b)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Title != matched[j].Title {
			return matched[i].Title < matched[j].Title
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	start := p.Offset()
	if start < 0 || start >= total || p.Size <= 0 {
		return []Book{}, total, nil
	}
	end := start + p.Size
	if end > total || end < start {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *MemoryRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}

// isbnTaken must be called with r.mu held.
func (r *MemoryRepo) isbnTaken(isbn, exceptID string) bool {
	for id, b := range r.books {
		if id != exceptID && b.ISBN == isbn {
			return true
		}
	}
	return false
}

func (f Filter) matches(b Book) bool {
	return containsFold(b.Title, f.Title) &&
		containsFold(b.Author, f.Author) &&
		containsFold(b.ISBN, f.ISBN)
}

func containsFold(value, sub string) bool {
	if sub == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(sub))
}
