package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/noah-isme/tutor-market/internal/repository"
	"github.com/noah-isme/tutor-market/migrations"
	"github.com/noah-isme/tutor-market/pkg/config"
	"github.com/noah-isme/tutor-market/pkg/database"
	"github.com/noah-isme/tutor-market/pkg/logger"
)

func main() {
	path := flag.String("file", "data/teachers.json", "path to the teachers data file")
	skipMigrations := flag.Bool("skip-migrations", false, "do not apply pending migrations first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(context.Background(), cfg, logr, *path, !*skipMigrations); err != nil {
		logr.Fatal("import failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger, path string, migrate bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var file dataFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	seed, err := buildSeed(file)
	if err != nil {
		return err
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	if migrate {
		if err := database.Migrate(ctx, db.DB, migrations.FS); err != nil {
			return err
		}
	}
	if err := repository.NewSeedRepository(db).Apply(ctx, seed); err != nil {
		return err
	}

	logr.Info("import finished",
		zap.Int("days", len(seed.Days)),
		zap.Int("goals", len(seed.Goals)),
		zap.Int("teachers", len(seed.Teachers)))
	return nil
}
