package book

import (
	"context"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new book. It fails with ErrDuplicateISBN when the ISBN is
// already taken; the store's own unique index covers the window between the
// check and the insert.
func (s *Service) Create(ctx context.Context, b Book) (Book, error) {
	exists, err := s.repo.ExistsByISBN(ctx, b.ISBN)
	if err != nil {
		return Book{}, err
	}
	if exists {
		return Book{}, ErrDuplicateISBN
	}
	return s.repo.Insert(ctx, b)
}

// Update replaces title, author and ISBN of an existing book.
// ISBN uniqueness is not re-checked here.
func (s *Service) Update(ctx context.Context, b *Book) (Book, error) {
	if err := requireID(b); err != nil {
		return Book{}, err
	}
	return s.repo.Save(ctx, *b)
}

// Delete removes an existing book.
func (s *Service) Delete(ctx context.Context, b *Book) error {
	if err := requireID(b); err != nil {
		return err
	}
	return s.repo.Delete(ctx, b.ID)
}

// FindByID returns the book with the given id; found is false when none exists.
func (s *Service) FindByID(ctx context.Context, id string) (Book, bool, error) {
	return s.repo.FindByID(ctx, id)
}

// Find returns one page of books matching the filter.
func (s *Service) Find(ctx context.Context, f Filter, p PageRequest) (Page, error) {
	items, total, err := s.repo.FindPage(ctx, f, p)
	if err != nil {
		return Page{}, err
	}
	return Page{
		Items:     items,
		Total:     total,
		PageIndex: p.Index,
		PageSize:  p.Size,
	}, nil
}

// Ping checks that the underlying store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func requireID(b *Book) error {
	if b == nil || b.ID == "" {
		return ErrMissingID
	}
	return nil
}
