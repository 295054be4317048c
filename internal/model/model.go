// Package model holds the persisted entities of the catalog: books, authors,
// genres, users and ratings, plus the two join tables (book_authors,
// book_genres) implied by the many2many tags.
package model

// All lists every persisted model, in migration order.
func All() []any {
	return []any{&Author{}, &Genre{}, &Book{}, &User{}, &Rating{}}
}
