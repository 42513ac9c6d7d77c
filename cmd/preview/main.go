package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	landing "github.com/goliatone/go-landing"
	"github.com/goliatone/go-landing/internal/documents"
	core "github.com/goliatone/go-landing/internal/landing"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	var (
		filePath      = flag.String("file", "", "Markdown file to preview (empty previews the default landing page)")
		templatePath  = flag.String("template", "", "Frontmatter template used for the default landing page")
		householdName = flag.String("household", "your household", "Household name substituted into the default page")
		dsn           = flag.String("dsn", "", "SQLite DSN for document storage (empty uses in-memory storage)")
		renderHTML    = flag.Bool("render-html", true, "Render markdown segments into HTML")
		hardWraps     = flag.Bool("hard-wraps", true, "Render newlines as hard line breaks")
	)

	flag.Parse()

	cfg := landing.DefaultConfig()
	cfg.Markdown.HardWraps = *hardWraps
	cfg.Template.Path = *templatePath

	ctx := context.Background()

	opts := []landing.Option{}
	if *dsn != "" {
		sqldb, err := sql.Open("sqlite3", *dsn)
		if err != nil {
			log.Fatalf("open sqlite database: %v", err)
		}
		defer sqldb.Close()

		db := bun.NewDB(sqldb, sqlitedialect.New())
		if err := documents.NewBunRepository(db).CreateTables(ctx); err != nil {
			log.Fatalf("create tables: %v", err)
		}

		cfg.Storage.Provider = "bun"
		opts = append(opts, landing.WithDB(db))
	}

	module, err := landing.New(cfg, opts...)
	if err != nil {
		log.Fatalf("initialise landing module: %v", err)
	}

	markdown, err := loadDocument(module, *filePath, *householdName)
	if err != nil {
		log.Fatalf("load document: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Document (%d bytes):\n%s\n", len(markdown), markdown)

	if missing := module.MissingKeys(markdown); len(missing) > 0 {
		fmt.Fprintf(os.Stdout, "Missing widgets: %s\n\n", strings.Join(missing, ", "))
	}

	if !*renderHTML {
		return
	}

	segments, err := module.Render(ctx, markdown)
	if err != nil {
		log.Fatalf("render document: %v", err)
	}

	fmt.Fprintln(os.Stdout, "Rendered segments:")
	for i, segment := range segments {
		if segment.Type == core.SegmentWidget {
			fmt.Fprintf(os.Stdout, "[%d] widget %q (order %d)\n", i, segment.Widget.Key, segment.Order)
			continue
		}
		fmt.Fprintf(os.Stdout, "[%d] markdown:\n%s\n", i, segment.HTML)
	}
}

func loadDocument(module *landing.Module, filePath, householdName string) (string, error) {
	if filePath == "" {
		return module.Service().Resolve(nil, householdName, landing.DefaultWidgetKeys()), nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
