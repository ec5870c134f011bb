package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/Tecnic226/Codis-Nous-TM/migrations/articles"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/config"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/migrator"
)

func main() {
	status := flag.Bool("status", false, "print migration status instead of applying")
	flag.Parse()
	os.Args = os.Args[:1] // conf.Parse reads os.Args

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *status {
		err = migrator.Status(cfg.DatabaseURL, articles.FS)
	} else {
		err = migrator.RunMigrations(cfg.DatabaseURL, articles.FS)
	}
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations complete")
}
