package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hrms-lite/internal/config"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/golang-migrate/migrate/v4"
)

const usage = "usage: migrate [up|down|version]"

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.SlogLevel(),
	})))

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	dsn := cfg.DatabaseURL()
	switch cmd {
	case "up":
		err = database.RunMigrations(dsn)
	case "down":
		err = database.RollbackMigration(dsn)
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = database.MigrationVersion(dsn)
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return
		}
		if err == nil {
			fmt.Printf("version %d (dirty: %t)\n", version, dirty)
		}
	default:
		fmt.Println(usage)
		os.Exit(2)
	}

	if err != nil {
		slog.Error("Migration failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}
