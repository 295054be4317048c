// Command loadbooks imports books from a CSV export into the catalog
// database. Expected columns: bookID, title, authors, average_rating.
// Author names are split on "/". Each imported book gets one or two
// random genres from a fixed list and a handful of synthetic ratings
// spread around the CSV's average, drawn from the existing users.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/shelfmate/catalog/internal/config"
	"github.com/shelfmate/catalog/internal/db"
	"github.com/shelfmate/catalog/internal/model"
)

var genreList = []string{
	"Fantasy",
	"Science Fiction",
	"Romance",
	"Mystery",
	"Historical",
	"Thriller",
	"Non-Fiction",
}

func main() {
	path := flag.String("file", "books.csv", "path to the CSV file")
	flag.Parse()

	godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	database, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connect failed")
	}
	if err := db.Migrate(database); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatal().Err(err).Str("file", *path).Msg("open failed")
	}
	defer f.Close()

	loader := &loader{
		db:      database,
		logger:  logger,
		authors: map[string]*model.Author{},
		genres:  map[string]*model.Genre{},
	}

	n, err := loader.run(context.Background(), csv.NewReader(f))
	if err != nil {
		logger.Fatal().Err(err).Msg("import failed")
	}
	logger.Info().Int("books", n).Msg("import complete")
}

type loader struct {
	db     *gorm.DB
	logger zerolog.Logger

	authors map[string]*model.Author
	genres  map[string]*model.Genre
	users   []model.User
}

func (l *loader) run(ctx context.Context, r *csv.Reader) (int, error) {
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, err
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	if err := l.db.WithContext(ctx).Find(&l.users).Error; err != nil {
		return 0, err
	}
	if len(l.users) == 0 {
		l.logger.Warn().Msg("no users in database, skipping synthetic ratings")
	}

	count := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}

		title := field(record, col, "title")
		authorsField := field(record, col, "authors")
		avgField := field(record, col, "average_rating")
		if title == "" || authorsField == "" || avgField == "" {
			continue
		}
		avg, err := strconv.ParseFloat(avgField, 64)
		if err != nil {
			continue
		}

		if err := l.importBook(ctx, title, authorsField, avg); err != nil {
			return count, err
		}
		count++
		if count%100 == 0 {
			l.logger.Info().Int("books", count).Msg("progress")
		}
	}
	return count, nil
}

func (l *loader) importBook(ctx context.Context, title, authorsField string, avg float64) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var authors []model.Author
		for _, name := range strings.Split(authorsField, "/") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			author, err := l.getOrCreateAuthor(tx, name)
			if err != nil {
				return err
			}
			authors = append(authors, *author)
		}

		var genres []model.Genre
		for _, name := range pickGenres() {
			genre, err := l.getOrCreateGenre(tx, name)
			if err != nil {
				return err
			}
			genres = append(genres, *genre)
		}

		book := model.Book{
			Title:   title,
			Authors: authors,
			Genres:  genres,
		}
		if err := tx.Create(&book).Error; err != nil {
			return err
		}

		return l.createRatings(tx, book.ID, avg)
	})
}

func (l *loader) getOrCreateAuthor(tx *gorm.DB, name string) (*model.Author, error) {
	if author, ok := l.authors[name]; ok {
		return author, nil
	}
	var author model.Author
	err := tx.Where("name = ?", name).First(&author).Error
	if err == gorm.ErrRecordNotFound {
		author = model.Author{Name: name}
		err = tx.Create(&author).Error
	}
	if err != nil {
		return nil, err
	}
	l.authors[name] = &author
	return &author, nil
}

func (l *loader) getOrCreateGenre(tx *gorm.DB, name string) (*model.Genre, error) {
	if genre, ok := l.genres[name]; ok {
		return genre, nil
	}
	var genre model.Genre
	err := tx.Where("name = ?", name).First(&genre).Error
	if err == gorm.ErrRecordNotFound {
		genre = model.Genre{Name: name}
		err = tx.Create(&genre).Error
	}
	if err != nil {
		return nil, err
	}
	l.genres[name] = &genre
	return &genre, nil
}

// createRatings attaches 3 to 10 synthetic ratings, each within 0.5 of
// the CSV average and clamped to the 1..5 range.
func (l *loader) createRatings(tx *gorm.DB, bookID uuid.UUID, avg float64) error {
	if len(l.users) == 0 {
		return nil
	}

	n := 3 + rand.Intn(8)
	if n > len(l.users) {
		n = len(l.users)
	}
	perm := rand.Perm(len(l.users))
	for _, idx := range perm[:n] {
		score := avg + (rand.Float64() - 0.5)
		if score < 1 {
			score = 1
		}
		if score > 5 {
			score = 5
		}
		rating := model.Rating{
			Score:  score,
			UserID: l.users[idx].ID,
			BookID: bookID,
		}
		if err := tx.Create(&rating).Error; err != nil {
			return err
		}
	}
	return nil
}

func pickGenres() []string {
	perm := rand.Perm(len(genreList))
	n := 1 + rand.Intn(2)
	picked := make([]string, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, genreList[idx])
	}
	return picked
}

func field(record []string, col map[string]int, name string) string {
	idx, ok := col[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
