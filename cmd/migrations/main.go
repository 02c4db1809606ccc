package main

import (
	"context"
	"log"
	"os"

	"github.com/vncsmyrnk/auth/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/auth/internal/config"
)

const usage = "usage: migrations <up|up-by-one|up-to VERSION|down|down-to VERSION|redo|reset|status|version>"

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}
	command := os.Args[1]

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	db, err := postgres.Open(ctx, cfg.Postgres.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db, command, os.Args[2:]...); err != nil {
		log.Fatal(err)
	}

	log.Printf("migration command %q executed successfully.", command)
}
