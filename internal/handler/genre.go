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

type GenreHandler struct {
	genres repository.GenreRepository
}

func NewGenreHandler(genres repository.GenreRepository) *GenreHandler {
	return &GenreHandler{genres: genres}
}

func (h *GenreHandler) RegisterRoutes(r *gin.RouterGroup) {
	genres := r.Group("/genres")
	{
		genres.POST("", h.CreateGenre)
		genres.GET("", h.ListGenres)
		genres.GET("/:id", h.GetGenreByID)
		genres.PATCH("/:id", h.UpdateGenre)
		genres.DELETE("/:id", h.DeleteGenre)
	}
}

// CreateGenre godoc
// @Summary      Create a genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateGenreRequest         true  "Genre to create"
// @Success      201      {object}  GenreResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      409      {object}  validation.ErrorResponse   "Name already taken"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /genres [post]
func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req CreateGenreRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	genre := model.Genre{Name: req.Name}

	if err := h.genres.Create(c.Request.Context(), &genre); err != nil {
		if isDuplicateKey(err) {
			writeError(c, http.StatusConflict,
				"GENRE_NAME_TAKEN",
				"a genre with this name already exists",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"GENRE_CREATE_FAILED",
			"failed to create genre",
		)
		return
	}

	c.JSON(http.StatusCreated, GenreResponse{Data: toGenreData(genre)})
}

// ListGenres godoc
// @Summary      List genres
// @Tags         genres
// @Produce      json
// @Success      200  {object}  ListGenresResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /genres [get]
func (h *GenreHandler) ListGenres(c *gin.Context) {
	genres, err := h.genres.List(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"GENRE_LIST_FAILED",
			"failed to list genres",
		)
		return
	}

	data := make([]Genre, 0, len(genres))
	for _, g := range genres {
		data = append(data, toGenreData(g))
	}

	c.JSON(http.StatusOK, ListGenresResponse{Data: data})
}

// GetGenreByID godoc
// @Summary      Get a genre by ID
// @Tags         genres
// @Produce      json
// @Param        id   path      string  true  "Genre ID (UUID)"
// @Success      200  {object}  GenreResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Genre not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /genres/{id} [get]
func (h *GenreHandler) GetGenreByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "INVALID_GENRE_ID", "invalid genre id")
	if !ok {
		return
	}

	genre, err := h.genres.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"GENRE_NOT_FOUND",
				"genre not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"GENRE_FETCH_FAILED",
			"failed to fetch genre",
		)
		return
	}

	c.JSON(http.StatusOK, GenreResponse{Data: toGenreData(*genre)})
}

// UpdateGenre godoc
// @Summary      Update a genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Genre ID (UUID)"
// @Param        payload  body      UpdateGenreRequest  true  "Fields to update"
// @Success      200      {object}  GenreResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse  "Genre not found"
// @Failure      409      {object}  validation.ErrorResponse  "Name already taken"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /genres/{id} [patch]
func (h *GenreHandler) UpdateGenre(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "INVALID_GENRE_ID", "invalid genre id")
	if !ok {
		return
	}

	var req UpdateGenreRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	genre, err := h.genres.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"GENRE_NOT_FOUND",
				"genre not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"GENRE_FETCH_FAILED",
			"failed to fetch genre",
		)
		return
	}

	if req.Name != nil {
		genre.Name = *req.Name
	}

	if err := h.genres.Update(ctx, genre); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"GENRE_NOT_FOUND",
				"genre not found",
			)
			return
		}
		if isDuplicateKey(err) {
			writeError(c, http.StatusConflict,
				"GENRE_NAME_TAKEN",
				"a genre with this name already exists",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"GENRE_UPDATE_FAILED",
			"failed to update genre",
		)
		return
	}

	c.JSON(http.StatusOK, GenreResponse{Data: toGenreData(*genre)})
}

// DeleteGenre godoc
// @Summary      Delete a genre
// @Description  Delete a genre and its book links, responding with the prior state.
// @Tags         genres
// @Produce      json
// @Param        id   path      string  true  "Genre ID (UUID)"
// @Success      200  {object}  GenreResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Genre not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "INVALID_GENRE_ID", "invalid genre id")
	if !ok {
		return
	}

	deleted, err := h.genres.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"GENRE_NOT_FOUND",
				"genre not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"GENRE_DELETE_FAILED",
			"failed to delete genre",
		)
		return
	}

	c.JSON(http.StatusOK, GenreResponse{Data: toGenreData(*deleted)})
}
