package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shelfmate/catalog/internal/model"
	"github.com/shelfmate/catalog/internal/repository"
	"github.com/shelfmate/catalog/internal/validation"
)

type BookHandler struct {
	books   repository.BookRepository
	ratings repository.RatingRepository
}

func NewBookHandler(books repository.BookRepository, ratings repository.RatingRepository) *BookHandler {
	return &BookHandler{books: books, ratings: ratings}
}

// RegisterRoutes wires the book endpoints. requireAuth guards the rate
// endpoint; everything else is public.
func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	books := r.Group("/books")
	{
		books.POST("", h.CreateBook)
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBookByID)
		books.PATCH("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)

		books.GET("/:id/ratings", h.ListBookRatings)
		books.POST("/:id/rate", requireAuth, h.RateBook)

		books.GET("/:id/genres", h.ListBookGenres)
		books.POST("/:id/genres/:genreID", h.LinkGenre)
		books.DELETE("/:id/genres/:genreID", h.UnlinkGenre)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book with title, description and sets of author and genre ids. Unknown ids are dropped, not rejected.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest          true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book := model.Book{
		Title:       req.Title,
		Description: req.Description,
	}

	ctx := c.Request.Context()

	if err := h.books.Create(ctx, &book, req.AuthorIDs, req.GenreIDs); err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_CREATE_FAILED",
			"failed to create book",
		)
		return
	}

	created, err := h.books.FindByID(ctx, book.ID)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_FETCH_FAILED",
			"failed to fetch created book",
		)
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(*created))
}

// ListBooks godoc
// @Summary      List books
// @Description  Get all books with their authors and genres, in creation order
// @Tags         books
// @Produce      json
// @Success      200  {object}  ListBooksResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.books.List(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_LIST_FAILED",
			"failed to fetch books",
		)
		return
	}

	data := make([]Book, 0, len(books))
	for _, b := range books {
		data = append(data, toBookData(b))
	}

	c.JSON(http.StatusOK, ListBooksResponse{Data: data})
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	bookID, ok := parseUUIDParam(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	book, err := h.books.FindByID(c.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_FETCH_FAILED",
			"failed to fetch book",
		)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Partially update a book. Supplying author_ids or genre_ids replaces the whole relation set.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Book ID (UUID)"
// @Param        payload  body      UpdateBookRequest  true  "Fields to update"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse  "Book not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [patch]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	bookID, ok := parseUUIDParam(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	var req UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.Title == nil && req.Description == nil &&
		req.AuthorIDs == nil && req.GenreIDs == nil {
		writeError(c, http.StatusBadRequest,
			"NO_FIELDS_TO_UPDATE",
			"at least one field must be provided to update",
		)
		return
	}

	params := repository.BookUpdateParams{
		Title:       req.Title,
		Description: req.Description,
		AuthorIDs:   req.AuthorIDs,
		GenreIDs:    req.GenreIDs,
	}

	updated, err := h.books.Update(c.Request.Context(), bookID, params)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_UPDATE_FAILED",
			"failed to update book",
		)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*updated))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book, its relation rows and its ratings. Responds with the deleted book's prior state.
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	bookID, ok := parseUUIDParam(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	deleted, err := h.books.Delete(c.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_DELETE_FAILED",
			"failed to delete book",
		)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*deleted))
}

// ListBookRatings godoc
// @Summary      List a book's ratings
// @Description  Get all ratings for a book. An unknown book id yields an empty list.
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  ListRatingsResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id}/ratings [get]
func (h *BookHandler) ListBookRatings(c *gin.Context) {
	bookID, ok := parseUUIDParam(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	ratings, err := h.ratings.ListForBook(c.Request.Context(), bookID)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"RATING_LIST_FAILED",
			"failed to fetch ratings",
		)
		return
	}

	data := make([]Rating, 0, len(ratings))
	for _, r := range ratings {
		data = append(data, toRatingData(r))
	}

	c.JSON(http.StatusOK, ListRatingsResponse{Data: data})
}

// RateBook godoc
// @Summary      Rate a book
// @Description  Record a score for a book on behalf of the authenticated user
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string           true  "Book ID (UUID)"
// @Param        payload  body      RateBookRequest  true  "Score between 1 and 5"
// @Success      201      {object}  RatingResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or score"
// @Failure      401      {object}  validation.ErrorResponse  "Missing or invalid token"
// @Failure      404      {object}  validation.ErrorResponse  "Book not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Security     BearerAuth
// @Router       /books/{id}/rate [post]
func (h *BookHandler) RateBook(c *gin.Context) {
	bookID, ok := parseUUIDParam(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	if _, err := h.books.FindByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_FETCH_FAILED",
			"failed to fetch book",
		)
		return
	}

	rating, err := h.ratings.Create(ctx, userID, bookID, req.Score)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"RATING_CREATE_FAILED",
			"failed to create rating",
		)
		return
	}

	c.JSON(http.StatusCreated, RatingResponse{Data: toRatingData(*rating)})
}

// ListBookGenres godoc
// @Summary      List a book's genres
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  ListGenresResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id}/genres [get]
func (h *BookHandler) ListBookGenres(c *gin.Context) {
	bookID, ok := parseUUIDParam(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	genres, err := h.books.ListGenres(c.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"GENRE_LIST_FAILED",
			"failed to fetch genres",
		)
		return
	}

	data := make([]Genre, 0, len(genres))
	for _, g := range genres {
		data = append(data, toGenreData(g))
	}

	c.JSON(http.StatusOK, ListGenresResponse{Data: data})
}

// LinkGenre godoc
// @Summary      Link a genre to a book
// @Description  Attach a genre to a book. Linking an already linked genre is a no-op.
// @Tags         books
// @Produce      json
// @Param        id       path      string  true  "Book ID (UUID)"
// @Param        genreID  path      string  true  "Genre ID (UUID)"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404      {object}  validation.ErrorResponse  "Book or genre not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id}/genres/{genreID} [post]
func (h *BookHandler) LinkGenre(c *gin.Context) {
	bookID, ok := parseUUIDParam(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}
	genreID, ok := parseUUIDParam(c, "genreID", "INVALID_GENRE_ID", "invalid genre id")
	if !ok {
		return
	}

	book, err := h.books.LinkGenre(c.Request.Context(), bookID, genreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_OR_GENRE_NOT_FOUND",
				"book or genre not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"GENRE_LINK_FAILED",
			"failed to link genre",
		)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// UnlinkGenre godoc
// @Summary      Unlink a genre from a book
// @Description  Detach a genre from a book. Unlinking a genre that is not linked is a no-op.
// @Tags         books
// @Produce      json
// @Param        id       path      string  true  "Book ID (UUID)"
// @Param        genreID  path      string  true  "Genre ID (UUID)"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404      {object}  validation.ErrorResponse  "Book or genre not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id}/genres/{genreID} [delete]
func (h *BookHandler) UnlinkGenre(c *gin.Context) {
	bookID, ok := parseUUIDParam(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}
	genreID, ok := parseUUIDParam(c, "genreID", "INVALID_GENRE_ID", "invalid genre id")
	if !ok {
		return
	}

	book, err := h.books.UnlinkGenre(c.Request.Context(), bookID, genreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_OR_GENRE_NOT_FOUND",
				"book or genre not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"GENRE_UNLINK_FAILED",
			"failed to unlink genre",
		)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}
