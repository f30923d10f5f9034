package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/lumendata/govcat/pkg/domain/govcat/db/postgres"
)

// Applies pending schema versions to the database and exits. Meant to
// run as a migration job before the server boots, so the server itself
// never races other replicas on DDL.
func main() {
	logger := log.Default()

	port := 5432
	if sp := os.Getenv("DB_PORT"); sp != "" {
		if p, err := strconv.Atoi(sp); err == nil {
			port = p
		}
	}

	host := flag.String("host", os.Getenv("DB_HOST"), "the host of the database")
	pport := flag.Int("port", port, "the port of the database")
	user := flag.String("user", os.Getenv("DB_USER"), "the user of the database")
	pass := flag.String("pass", os.Getenv("DB_PASSWORD"), "the password of the database")
	database := flag.String("database", os.Getenv("DB_NAME"), "the name of the database")
	schema := flag.String("schema", os.Getenv("GOVCAT_SCHEMA"), "the path to the schema repository directory")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt, os.Kill,
	)
	defer cancel()

	db, err := postgres.New(
		ctx,
		fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s",
			*user, *pass, *host, *pport, *database,
		),
		postgres.WithSchemaRepository(*schema),
	)
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	if err := db.Schema().Upgrade(ctx); err != nil {
		logger.Fatal(err)
	}

	version, err := db.Schema().Version(ctx)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Printf("schema is at version %d", version)
}
