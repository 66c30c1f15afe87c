package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/pawfessional/store-api/internal/ai"
	"github.com/pawfessional/store-api/internal/database"
)

// Loads the launch catalog into the products table. By default it refuses
// to run against a non-empty table; pass -force to append anyway.
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	force := flag.Bool("force", false, "seed even if products already exist")
	describe := flag.Bool("describe", false, "generate product descriptions (needs GEMINI_API_KEY)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("no .env file found, relying on environment")
	}

	db, err := database.OpenDB()
	if err != nil {
		logger.Fatal().Err(err).Msg("could not connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if !*force {
		var existing int
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&existing); err != nil {
			logger.Fatal().Err(err).Msg("could not inspect products table")
		}
		if existing > 0 {
			logger.Fatal().Int("existing", existing).Msg("products table is not empty, use -force to append")
		}
	}

	var descriptions *ai.DescriptionService
	if *describe {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			logger.Fatal().Msg("-describe requires GEMINI_API_KEY")
		}
		descriptions, err = ai.NewDescriptionService(ctx, apiKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not start description service")
		}
		defer descriptions.Close()
	}

	seeded, err := seedCatalog(ctx, db, descriptions, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("seeding failed")
	}
	logger.Info().Int("products", seeded).Msg("catalog seeded")
}

func seedCatalog(ctx context.Context, db *sql.DB, descriptions *ai.DescriptionService, logger zerolog.Logger) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO products (slug, name, brand, product_type, price, cost, count, description, image, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now()
	for i, p := range catalog {
		description := ""
		if descriptions != nil {
			description, err = descriptions.Describe(ctx, p.Name, p.Brand, p.ProductType)
			if err != nil {
				logger.Warn().Err(err).Str("product", p.Name).Msg("description generation failed, leaving blank")
				description = ""
			}
		}

		image := fmt.Sprintf("/images/products/%s.jpg", slug.Make(p.Name))
		_, err = tx.ExecContext(ctx, insert,
			slug.Make(p.Name), p.Name, p.Brand, p.ProductType,
			p.Price, p.Cost, p.Count, description, image, now,
		)
		if err != nil {
			return i, fmt.Errorf("inserting %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(catalog), nil
}
