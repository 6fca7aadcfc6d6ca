// Command import ingests markdown files with front matter as devlog entries.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	devlog "github.com/goliatone/go-devlog"
	"github.com/goliatone/go-devlog/internal/commands"
	contentcmd "github.com/goliatone/go-devlog/internal/commands/content"
	"github.com/goliatone/go-devlog/internal/di"
	"github.com/goliatone/go-devlog/internal/logging"
	"github.com/goliatone/go-devlog/internal/markdown"
	"github.com/goliatone/go-devlog/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dir := flag.String("dir", "content", "directory containing markdown files")
	publish := flag.Bool("publish", false, "publish imported entries regardless of front matter")
	flag.Parse()

	ctx := context.Background()
	cfg := devlog.DefaultConfig()
	cfg.Storage.Driver = getEnv("DEVLOG_DB_DRIVER", "sqlite")
	cfg.Storage.DSN = getEnv("DEVLOG_DB_DSN", "file:devlog.db?_foreign_keys=on")

	db, err := storage.Open(cfg.Storage)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer db.Close()
	if err := devlog.RunMigrations(ctx, db); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	module, err := devlog.New(cfg, di.WithBunDB(db))
	if err != nil {
		log.Fatalf("initialise devlog: %v", err)
	}

	importer := markdown.NewImporter(markdown.ImporterConfig{
		Content: module.Content(),
		Logger:  logging.MarkdownLogger(module.LoggerProvider()),
	})

	result, err := importer.ImportDir(ctx, os.DirFS(*dir), ".")
	if err != nil {
		log.Fatalf("import %s: %v", *dir, err)
	}

	if *publish {
		handler := contentcmd.NewPublishDevlogHandler(
			module.Content(),
			commands.CommandLogger(module.LoggerProvider(), "import"),
		)
		for _, id := range result.CreatedIDs {
			if err := handler.Execute(ctx, contentcmd.PublishDevlogCommand{DevlogID: id}); err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("publish %s: %w", id, err))
			}
		}
	}

	fmt.Printf("imported %d entries, skipped %d\n", len(result.Created), len(result.Skipped))
	for _, importErr := range result.Errors {
		fmt.Printf("error: %v\n", importErr)
	}
	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
