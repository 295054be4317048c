package handler

import (
	"github.com/shelfmate/catalog/internal/model"
)

func toAuthorData(a model.Author) Author {
	return Author{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toGenreData(g model.Genre) Genre {
	return Genre{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func toBookData(b model.Book) Book {
	authors := make([]AuthorSummary, 0, len(b.Authors))
	for _, a := range b.Authors {
		authors = append(authors, AuthorSummary{ID: a.ID, Name: a.Name})
	}

	genres := make([]GenreSummary, 0, len(b.Genres))
	for _, g := range b.Genres {
		genres = append(genres, GenreSummary{ID: g.ID, Name: g.Name})
	}

	return Book{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Authors:     authors,
		Genres:      genres,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBookResponse(b model.Book) BookResponse {
	return BookResponse{Data: toBookData(b)}
}

func toRatingData(r model.Rating) Rating {
	return Rating{
		ID:        r.ID,
		Score:     r.Score,
		UserID:    r.UserID,
		BookID:    r.BookID,
		CreatedAt: r.CreatedAt,
	}
}

func toUserData(u model.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
