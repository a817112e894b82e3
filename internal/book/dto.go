package book

import "time"

// BookRequest is the wire payload for create and update.
type BookRequest struct {
	Title  string `json:"title" validate:"notblank,max=255"`
	Author string `json:"author" validate:"notblank,max=255"`
	ISBN   string `json:"isbn" validate:"notblank,max=32"`
}

// BookResponse is the wire representation of a stored book.
type BookResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ISBN      string    `json:"isbn"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r BookRequest) toBook() Book {
	return Book{Title: r.Title, Author: r.Author, ISBN: r.ISBN}
}

func toResponse(b Book) BookResponse {
	return BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		ISBN:      b.ISBN,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toResponses(books []Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toResponse(b))
	}
	return out
}
