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

type AuthorHandler struct {
	authors repository.AuthorRepository
}

func NewAuthorHandler(authors repository.AuthorRepository) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	authors := r.Group("/authors")
	{
		authors.POST("", h.CreateAuthor)
		authors.GET("", h.ListAuthors)
		authors.GET("/:id", h.GetAuthorByID)
		authors.PATCH("/:id", h.UpdateAuthor)
		authors.DELETE("/:id", h.DeleteAuthor)
	}
}

// CreateAuthor godoc
// @Summary      Create an author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateAuthorRequest        true  "Author to create"
// @Success      201      {object}  AuthorResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      409      {object}  validation.ErrorResponse   "Name already taken"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req CreateAuthorRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	author := model.Author{Name: req.Name}

	if err := h.authors.Create(c.Request.Context(), &author); err != nil {
		if isDuplicateKey(err) {
			writeError(c, http.StatusConflict,
				"AUTHOR_NAME_TAKEN",
				"an author with this name already exists",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"AUTHOR_CREATE_FAILED",
			"failed to create author",
		)
		return
	}

	c.JSON(http.StatusCreated, AuthorResponse{Data: toAuthorData(author)})
}

// ListAuthors godoc
// @Summary      List authors
// @Tags         authors
// @Produce      json
// @Success      200  {object}  ListAuthorsResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.authors.List(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"AUTHOR_LIST_FAILED",
			"failed to list authors",
		)
		return
	}

	data := make([]Author, 0, len(authors))
	for _, a := range authors {
		data = append(data, toAuthorData(a))
	}

	c.JSON(http.StatusOK, ListAuthorsResponse{Data: data})
}

// GetAuthorByID godoc
// @Summary      Get an author by ID
// @Tags         authors
// @Produce      json
// @Param        id   path      string  true  "Author ID (UUID)"
// @Success      200  {object}  AuthorResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [get]
func (h *AuthorHandler) GetAuthorByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "INVALID_AUTHOR_ID", "invalid author id")
	if !ok {
		return
	}

	author, err := h.authors.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"AUTHOR_NOT_FOUND",
				"author not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"AUTHOR_FETCH_FAILED",
			"failed to fetch author",
		)
		return
	}

	c.JSON(http.StatusOK, AuthorResponse{Data: toAuthorData(*author)})
}

// UpdateAuthor godoc
// @Summary      Update an author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Author ID (UUID)"
// @Param        payload  body      UpdateAuthorRequest  true  "Fields to update"
// @Success      200      {object}  AuthorResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse  "Author not found"
// @Failure      409      {object}  validation.ErrorResponse  "Name already taken"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [patch]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "INVALID_AUTHOR_ID", "invalid author id")
	if !ok {
		return
	}

	var req UpdateAuthorRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	author, err := h.authors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"AUTHOR_NOT_FOUND",
				"author not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"AUTHOR_FETCH_FAILED",
			"failed to fetch author",
		)
		return
	}

	if req.Name != nil {
		author.Name = *req.Name
	}

	if err := h.authors.Update(ctx, author); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"AUTHOR_NOT_FOUND",
				"author not found",
			)
			return
		}
		if isDuplicateKey(err) {
			writeError(c, http.StatusConflict,
				"AUTHOR_NAME_TAKEN",
				"an author with this name already exists",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"AUTHOR_UPDATE_FAILED",
			"failed to update author",
		)
		return
	}

	c.JSON(http.StatusOK, AuthorResponse{Data: toAuthorData(*author)})
}

// DeleteAuthor godoc
// @Summary      Delete an author
// @Description  Delete an author and its book links, responding with the prior state. Ratings of the author's books are kept.
// @Tags         authors
// @Produce      json
// @Param        id   path      string  true  "Author ID (UUID)"
// @Success      200  {object}  AuthorResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "INVALID_AUTHOR_ID", "invalid author id")
	if !ok {
		return
	}

	deleted, err := h.authors.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"AUTHOR_NOT_FOUND",
				"author not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"AUTHOR_DELETE_FAILED",
			"failed to delete author",
		)
		return
	}

	c.JSON(http.StatusOK, AuthorResponse{Data: toAuthorData(*deleted)})
}
