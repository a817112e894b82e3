package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const selectColumns = `id::text, title, author, isbn, created_at, updated_at`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var exists bool
	if err := r.db.QueryRow(timeoutCtx, query, isbn).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists by isbn: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepo) Insert(ctx context.Context, b Book) (Book, error) {
	const query = `
		INSERT INTO books (title, author, isbn, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + selectColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	out, err := scanBook(r.db.QueryRow(timeoutCtx, query, b.Title, b.Author, b.ISBN))
	if err != nil {
		if isUniqueViolation(err) {
			return Book{}, ErrDuplicateISBN
		}
		return Book{}, fmt.Errorf("insert book: %w", err)
	}
	return out, nil
}

func (r *PostgresRepo) Save(ctx context.Context, b Book) (Book, error) {
	const query = `
		UPDATE books
		SET title = $2, author = $3, isbn = $4, updated_at = NOW()
		WHERE id::text = $1
		RETURNING ` + selectColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	out, err := scanBook(r.db.QueryRow(timeoutCtx, query, b.ID, b.Title, b.Author, b.ISBN))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return Book{}, ErrNotFound
		case isUniqueViolation(err):
			return Book{}, ErrDuplicateISBN
		}
		return Book{}, fmt.Errorf("update book: %w", err)
	}
	return out, nil
}

func (r *PostgresRepo) FindByID(ctx context.Context, id string) (Book, bool, error) {
	const query = `SELECT ` + selectColumns + ` FROM books WHERE id::text = $1 LIMIT 1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, false, nil
		}
		return Book{}, false, fmt.Errorf("find book by id: %w", err)
	}
	return b, true, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) FindPage(ctx context.Context, f Filter, p PageRequest) ([]Book, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	for _, c := range []struct {
		column string
		value  string
	}{
		{"title", f.Title},
		{"author", f.Author},
		{"isbn", f.ISBN},
	} {
		if c.value == "" {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", c.column, argn))
		args = append(args, "%"+escapeLike(c.value)+"%")
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	var total int
	countSQL := "SELECT COUNT(*) FROM books " + where
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM books
		%s
		ORDER BY title ASC, id ASC
		LIMIT $%d OFFSET $%d`,
		selectColumns, where, argn, argn+1)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, p.Size, p.Offset())
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.Ping(timeoutCtx)
}

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// escapeLike quotes LIKE metacharacters so filter values match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
