package book

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"libraryapi/internal/httpx"
	"libraryapi/internal/platform/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxOffset       = math.MaxInt32
)

type HTTPHandler struct {
	service *Service
	log     *logger.Logger
}

func NewHTTPHandler(service *Service, log *logger.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Register mounts the book routes on mux under /api/books.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/books", h.Create)
	mux.HandleFunc("GET /api/books", h.Find)
	mux.HandleFunc("GET /api/books/{id}", h.GetByID)
	mux.HandleFunc("PUT /api/books/{id}", h.Update)
	mux.HandleFunc("DELETE /api/books/{id}", h.Delete)
}

// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Param book body BookRequest true "Book"
// @Success 201 {object} BookResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := httpx.ValidateStruct(req); len(errs) > 0 {
		httpx.JSONValidationError(r, w, errs)
		return
	}

	saved, err := h.service.Create(r.Context(), req.toBook())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(r, w, toResponse(saved))
}

// @Summary Get book by id
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} BookResponse
// @Failure 404
// @Router /api/books/{id} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, ok := h.lookup(w, r)
	if !ok {
		return
	}
	httpx.JSONSuccess(r, w, toResponse(b), nil)
}

// @Summary Update book
// @Description Replaces title, author and ISBN of an existing book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param book body BookRequest true "Book"
// @Success 200 {object} BookResponse
// @Failure 404
// @Router /api/books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	current, ok := h.lookup(w, r)
	if !ok {
		return
	}
	var req BookRequest
	if !h.decode(w, r, &req) {
		return
	}

	current.Title = req.Title
	current.Author = req.Author
	current.ISBN = req.ISBN
	updated, err := h.service.Update(r.Context(), &current)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(r, w, toResponse(updated), nil)
}

// @Summary Delete book
// @Tags books
// @Param id path string true "Book ID"
// @Success 204
// @Failure 404
// @Router /api/books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	current, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), &current); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// @Summary Find books
// @Description Filters by case-insensitive substring on every given field
// @Tags books
// @Produce json
// @Param title query string false "Title contains"
// @Param author query string false "Author contains"
// @Param isbn query string false "ISBN contains"
// @Param page query int false "Page index (0-based)" default(0)
// @Param size query int false "Items per page" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /api/books [get]
func (h *HTTPHandler) Find(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := Filter{
		Title:  query.Get("title"),
		Author: query.Get("author"),
		ISBN:   query.Get("isbn"),
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 0 {
		page = 0
	}
	size, _ := strconv.Atoi(query.Get("size"))
	if size <= 0 || size > maxPageSize {
		size = defaultPageSize
	}
	if page > maxOffset/size {
		page = maxOffset / size
	}

	result, err := h.service.Find(r.Context(), filter, PageRequest{Index: page, Size: size})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSONSuccess(r, w, toResponses(result.Items), map[string]interface{}{
		"page":        result.PageIndex,
		"page_size":   result.PageSize,
		"total":       result.Total,
		"total_pages": result.TotalPages(),
	})
}

// lookup resolves the {id} path value. It writes the 404 or 500 itself and
// reports false when the handler should stop.
func (h *HTTPHandler) lookup(w http.ResponseWriter, r *http.Request) (Book, bool) {
	id := r.PathValue("id")
	if id == "" {
		httpx.NotFound(w)
		return Book{}, false
	}
	b, found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return Book{}, false
	}
	if !found {
		httpx.NotFound(w)
		return Book{}, false
	}
	return b, true
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_BODY", "Request body must be a JSON object", nil)
		return false
	}
	return true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrDuplicateISBN):
		httpx.JSONBusinessError(r, w, err)
	case errors.Is(err, ErrMissingID):
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		httpx.NotFound(w)
	default:
		h.log.Error("book request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", httpx.RequestIDFrom(r),
			"error", err,
		)
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
