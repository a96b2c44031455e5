package book

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/platform/logging"
)

const (
	msgNotFound    = "Book not found"
	msgRequired    = "All fields are required"
	msgInvalidBody = "Invalid request body"
	msgTooLarge    = "Request body too large"
	msgInternal    = "Internal server error"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the book routes under /api/books.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/books", h.List)
	mux.HandleFunc("GET /api/books/search", h.Search)
	mux.HandleFunc("GET /api/books/{id}", h.Get)
	mux.HandleFunc("POST /api/books", h.Create)
	mux.HandleFunc("PUT /api/books/{id}", h.Update)
	mux.HandleFunc("DELETE /api/books/{id}", h.Delete)
}

// List handles GET /api/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Search handles GET /api/books/search?q=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Get handles GET /api/books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, msgNotFound)
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Create handles POST /api/books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	b, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}

// Update handles PUT /api/books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, msgNotFound)
		return
	}

	b, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Delete handles DELETE /api/books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// pathID parses the {id} segment. A non-numeric id names no book.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) decodeInput(w http.ResponseWriter, r *http.Request) (Input, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		if httpx.IsBodyTooLarge(err) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
			return Input{}, false
		}
		logging.FromContext(r.Context()).Debug("read book payload", "error", err)
		httpx.JSONError(w, http.StatusBadRequest, msgInvalidBody)
		return Input{}, false
	}

	in, err := DecodeInput(body)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			h.writeError(w, r, err)
			return Input{}, false
		}
		logging.FromContext(r.Context()).Debug("decode book payload", "error", err)
		httpx.JSONError(w, http.StatusBadRequest, msgInvalidBody)
		return Input{}, false
	}
	return in, true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, ErrValidation):
		logging.FromContext(r.Context()).Debug("reject book payload", "error", err)
		httpx.JSONError(w, http.StatusBadRequest, msgRequired)
	default:
		logging.FromContext(r.Context()).Error("book request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		httpx.JSONError(w, http.StatusInternalServerError, msgInternal)
	}
}
