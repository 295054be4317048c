package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelfmate/catalog/internal/repository"
)

type StatsHandler struct {
	stats repository.StatsRepository
}

func NewStatsHandler(stats repository.StatsRepository) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Both stats routes return the same combined object, mirroring the
// long-standing API shape.
func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	stats := r.Group("/stats")
	{
		stats.GET("/top-books", h.GetStats)
		stats.GET("/top-authors", h.GetStats)
	}
}

type RatedBook struct {
	Book
	AverageScore float64 `json:"average_score"`
}

type RatedAuthor struct {
	Author
	AverageScore float64 `json:"average_score"`
}

type StatsResponse struct {
	TopBooks   []RatedBook   `json:"top_books"`
	TopAuthors []RatedAuthor `json:"top_authors"`
}

// GetStats godoc
// @Summary      Top rated books and authors
// @Description  Top 3 books and top 3 authors by mean rating score. Entities without any rating are excluded.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /stats/top-books [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	topBooks, err := h.stats.TopBooks(ctx, repository.DefaultTopLimit)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"STATS_FAILED",
			"failed to compute top books",
		)
		return
	}

	topAuthors, err := h.stats.TopAuthors(ctx, repository.DefaultTopLimit)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"STATS_FAILED",
			"failed to compute top authors",
		)
		return
	}

	resp := StatsResponse{
		TopBooks:   make([]RatedBook, 0, len(topBooks)),
		TopAuthors: make([]RatedAuthor, 0, len(topAuthors)),
	}
	for _, tb := range topBooks {
		resp.TopBooks = append(resp.TopBooks, RatedBook{
			Book:         toBookData(tb.Book),
			AverageScore: tb.AverageScore,
		})
	}
	for _, ta := range topAuthors {
		resp.TopAuthors = append(resp.TopAuthors, RatedAuthor{
			Author:       toAuthorData(ta.Author),
			AverageScore: ta.AverageScore,
		})
	}

	c.JSON(http.StatusOK, resp)
}
