package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	landing "github.com/goliatone/go-landing"
	landingcmd "github.com/goliatone/go-landing/internal/commands/landing"
	"github.com/goliatone/go-landing/internal/documents"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// Demonstrates the full landing-page lifecycle against an in-memory SQLite
// database: resolve the default page, edit and save a custom document, then
// reorder widgets through the command layer.
func main() {
	ctx := context.Background()

	sqldb, err := sql.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil {
		log.Fatalf("open sqlite database: %v", err)
	}
	defer sqldb.Close()

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := documents.NewBunRepository(db).CreateTables(ctx); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	cfg := landing.DefaultConfig()
	cfg.Storage.Provider = "bun"
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "console"

	module, err := landing.New(cfg, landing.WithDB(db))
	if err != nil {
		log.Fatalf("initialise landing module: %v", err)
	}

	householdID := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	ownerID := uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")

	effective, err := module.Resolve(ctx, householdID, "The Nook")
	if err != nil {
		log.Fatalf("resolve landing page: %v", err)
	}
	fmt.Printf("Default landing page:\n%s\n", effective)

	session, err := module.Edit(ctx, householdID, ownerID, landing.RoleOwner, "The Nook")
	if err != nil {
		log.Fatalf("open edit session: %v", err)
	}

	custom := "# Our place\n\n{{widget:tasks-overview}}\n\n{{widget:shopping-list}}\n\n{{widget:member-roster}}\n"
	if err := session.UpdateDraft(custom); err != nil {
		log.Fatalf("update draft: %v", err)
	}
	if err := session.Save(ctx); err != nil {
		log.Fatalf("save draft: %v", err)
	}
	session.Close()

	err = module.Commands().MoveWidget.Execute(ctx, landingcmd.MoveWidgetCommand{
		HouseholdID: householdID,
		MemberID:    ownerID,
		FromIndex:   0,
		ToIndex:     2,
	})
	if err != nil {
		log.Fatalf("move widget: %v", err)
	}

	effective, err = module.Resolve(ctx, householdID, "The Nook")
	if err != nil {
		log.Fatalf("resolve landing page: %v", err)
	}
	fmt.Printf("After reorder:\n%s\n", effective)

	segments, err := module.Render(ctx, effective)
	if err != nil {
		log.Fatalf("render landing page: %v", err)
	}
	for _, segment := range segments {
		if segment.Widget.Key != "" {
			fmt.Printf("widget: %s (order %d)\n", segment.Widget.Key, segment.Order)
		}
	}
}
