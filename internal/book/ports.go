package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	// ExistsByISBN reports whether any stored book has exactly this ISBN.
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	// Insert stores a new book and returns it with its assigned ID.
	Insert(ctx context.Context, b Book) (Book, error)
	// Save overwrites the book with b.ID. Returns ErrNotFound for an unknown ID.
	Save(ctx context.Context, b Book) (Book, error)
	FindByID(ctx context.Context, id string) (Book, bool, error)
	Delete(ctx context.Context, id string) error
	// FindPage lists books matching the filter, ordered by title, plus the total match count.
	FindPage(ctx context.Context, f Filter, p PageRequest) ([]Book, int, error)
	Ping(ctx context.Context) error
}
