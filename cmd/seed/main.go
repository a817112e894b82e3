package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/platform/logger"
	"libraryapi/internal/platform/postgres"
)

var (
	authors = []string{"Machado de Assis", "Clarice Lispector", "Jorge Amado", "Cecília Meireles", "Graciliano Ramos"}
	words   = []string{"Memórias", "Sertão", "Cidade", "Mar", "Noite", "Jardim", "Tempo", "Viagem"}
)

func main() {
	count := flag.Int("count", 100, "Number of books to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()
	pool, err := postgres.Open(ctx, cfg.DatabaseDSN, 5*time.Second)
	if err != nil {
		log.Fatal("cannot open database", "error", err)
	}
	defer pool.Close()

	service := book.NewService(book.NewPostgresRepo(pool, cfg.DBTimeout))
	created, skipped, err := seed(ctx, service, *count, rand.New(rand.NewSource(1)))
	if err != nil {
		log.Fatal("seed failed", "created", created, "error", err)
	}
	log.Info("seed finished", "created", created, "skipped_duplicates", skipped)
}

// seed creates count books with deterministic ISBNs. Books whose ISBN is
// already stored are skipped, so running it twice is harmless.
func seed(ctx context.Context, service *book.Service, count int, rng *rand.Rand) (created, skipped int, err error) {
	for i := 0; i < count; i++ {
		b := book.Book{
			Title:  fmt.Sprintf("%s %s %d", words[rng.Intn(len(words))], words[rng.Intn(len(words))], i+1),
			Author: authors[rng.Intn(len(authors))],
			ISBN:   fmt.Sprintf("978-%09d", i+1),
		}
		if _, err := service.Create(ctx, b); err != nil {
			if errors.Is(err, book.ErrDuplicateISBN) {
				skipped++
				continue
			}
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}
