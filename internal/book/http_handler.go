package book

import (
	"errors"
	"log"
	"net/http"

	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/{bookId}", h.GetByID)
	mux.HandleFunc("PUT /books/{bookId}", h.Update)
	mux.HandleFunc("DELETE /books/{bookId}", h.Delete)
}

// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r, "Failed to add book")
	if !ok {
		return
	}

	id, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err, "Failed to add book", "")
		return
	}

	httpx.JSONSuccessCreated(w, "Book added", map[string]string{"bookId": id})
}

// @Summary List books
// @Tags books
// @Produce json
// @Param name query string false "Case-insensitive name fragment"
// @Param reading query string false "0/1 or true/false"
// @Param finished query string false "0/1 or true/false"
// @Success 200 {object} httpx.Response
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	books, err := h.service.ListFiltered(r.Context(), Query{
		Name:     query.Get("name"),
		Reading:  ParseFlag(query.Get("reading")),
		Finished: ParseFlag(query.Get("finished")),
	})
	if err != nil {
		h.writeError(w, r, err, "Failed to list books", "")
		return
	}

	httpx.JSONSuccess(w, "", map[string]any{"books": books})
}

// @Summary Get a book
// @Tags books
// @Produce json
// @Param bookId path string true "Book ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /books/{bookId} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByID(r.Context(), r.PathValue("bookId"))
	if err != nil {
		h.writeError(w, r, err, "Failed to get book", "Book not found")
		return
	}

	httpx.JSONSuccess(w, "", map[string]any{"book": b})
}

// @Summary Replace a book
// @Tags books
// @Accept json
// @Produce json
// @Param bookId path string true "Book ID"
// @Success 200 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /books/{bookId} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r, "Failed to update book")
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), r.PathValue("bookId"), in); err != nil {
		h.writeError(w, r, err, "Failed to update book", "Failed to update book. Id not found")
		return
	}

	httpx.JSONSuccess(w, "Book updated", nil)
}

// @Summary Delete a book
// @Tags books
// @Produce json
// @Param bookId path string true "Book ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /books/{bookId} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("bookId")); err != nil {
		h.writeError(w, r, err, "Failed to delete book", "Failed to delete book. Id not found")
		return
	}

	httpx.JSONSuccess(w, "Book deleted", nil)
}

func decodeInput(w http.ResponseWriter, r *http.Request, action string) (Input, bool) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		if httpx.IsBodyTooLarge(err) {
			httpx.JSONFail(w, http.StatusRequestEntityTooLarge, "request body too large")
			return Input{}, false
		}
		httpx.JSONFail(w, http.StatusBadRequest, action+". Invalid JSON body")
		return Input{}, false
	}
	return in, true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error, action, notFound string) {
	switch {
	case errors.Is(err, ErrMissingName):
		httpx.JSONFail(w, http.StatusBadRequest, action+". Please provide the book name")
	case errors.Is(err, ErrReadPageExceedsPageCount):
		httpx.JSONFail(w, http.StatusBadRequest, action+". readPage must not be greater than pageCount")
	case errors.Is(err, ErrValidation):
		httpx.JSONFail(w, http.StatusBadRequest, action)
	case errors.Is(err, ErrNotFound) && notFound != "":
		httpx.JSONFail(w, http.StatusNotFound, notFound)
	default:
		log.Printf("book handler: method=%s path=%s request_id=%s error=%v",
			r.Method, r.URL.Path, httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, action)
	}
}
