package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"access-compass-api/internal/config"
	"access-compass-api/internal/models"
	"access-compass-api/internal/repository"
	"access-compass-api/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Seeds the catalog from a CSV with the columns:
// name,address,description,latitude,longitude,image_url,features,categories
// where features and categories are pipe-separated name lists. Reference
// rows are get-or-created by name; each imported location is classified
// through the regular save path.
func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	// .env is optional; the config file and environment still apply.
	_ = godotenv.Load()

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	ctx := context.Background()
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)
	if err := repo.InitSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot initialize schema")
	}
	locations := service.NewLocationService(repo)

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("cannot open file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse csv")
	}

	imported := 0
	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if len(record) < 8 {
			log.Warn().Int("line", i+1).Msg("skipping short record")
			continue
		}

		featureIDs, err := ensureAll(ctx, record[6], repo.EnsureFeature)
		if err != nil {
			log.Fatal().Err(err).Int("line", i+1).Msg("cannot resolve features")
		}
		categoryIDs, err := ensureAll(ctx, record[7], repo.EnsureCategory)
		if err != nil {
			log.Fatal().Err(err).Int("line", i+1).Msg("cannot resolve categories")
		}

		lat, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			log.Fatal().Err(err).Int("line", i+1).Msg("invalid latitude")
		}
		lon, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			log.Fatal().Err(err).Int("line", i+1).Msg("invalid longitude")
		}
		params := models.LocationParams{
			Name:        &record[0],
			Address:     &record[1],
			Description: &record[2],
			Latitude:    &lat,
			Longitude:   &lon,
			ImageURL:    &record[5],
			FeatureIDs:  featureIDs,
			CategoryIDs: categoryIDs,
		}
		if _, err := locations.Create(ctx, params); err != nil {
			log.Fatal().Err(err).Int("line", i+1).Msg("cannot import location")
		}
		imported++
	}

	log.Info().Int("locations", imported).Msg("import complete")
}

// ensureAll resolves a pipe-separated name list to ids via the given
// get-or-create function.
func ensureAll(ctx context.Context, names string, ensure func(context.Context, string) (int, error)) ([]int, error) {
	ids := []int{}
	for _, name := range strings.Split(names, "|") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id, err := ensure(ctx, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
