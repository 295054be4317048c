// Command resetdb drops and recreates every catalog table. With
// -seed-users N it also creates N accounts named user1..userN, all
// with the password "password", so loadbooks has rating authors to
// draw from.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/shelfmate/catalog/internal/auth"
	"github.com/shelfmate/catalog/internal/config"
	"github.com/shelfmate/catalog/internal/db"
	"github.com/shelfmate/catalog/internal/model"
)

func main() {
	seedUsers := flag.Int("seed-users", 0, "number of userN accounts to create after the reset")
	flag.Parse()

	godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	database, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connect failed")
	}

	if err := db.Reset(database); err != nil {
		logger.Fatal().Err(err).Msg("reset failed")
	}
	logger.Info().Msg("database reset")

	if *seedUsers <= 0 {
		return
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		logger.Fatal().Err(err).Msg("hash failed")
	}
	for i := 1; i <= *seedUsers; i++ {
		user := model.User{
			Username:     fmt.Sprintf("user%d", i),
			PasswordHash: hash,
		}
		if err := database.Create(&user).Error; err != nil {
			logger.Fatal().Err(err).Str("username", user.Username).Msg("seed user failed")
		}
	}
	logger.Info().Int("users", *seedUsers).Msg("seeded users")
}
