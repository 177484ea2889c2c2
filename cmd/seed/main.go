package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/brand-lab/internal/config"
	"github.com/JaimeStill/brand-lab/internal/presentations"
	"github.com/JaimeStill/brand-lab/pkg/database"
	"github.com/JaimeStill/brand-lab/pkg/logging"
)

func main() {
	var (
		all     = flag.Bool("all", false, "Run all seeders")
		present = flag.Bool("presentations", false, "Seed presentations")
		file    = flag.String("file", "", "External seed file (overrides embedded)")
		list    = flag.Bool("list", false, "List available seeders")
		migrate = flag.Bool("migrate", false, "Apply schema migrations before seeding")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if !*all && !*present && !*migrate {
		fmt.Println("usage: seed [-migrate] [-all|-presentations] [-file <path>] [-list]")
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.FinalizeDatabase(); err != nil {
		log.Fatalf("invalid database config: %v", err)
	}

	logger := logging.New(&cfg.Logging)

	if *migrate {
		if err := database.Migrate(&cfg.Database, presentations.Migrations, presentations.MigrationsDir, logger); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	db, err := sql.Open("pgx", cfg.Database.Dsn())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnTimeoutDuration())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if seeder, ok := getSeeder("presentations"); ok {
		ps := seeder.(*PresentationSeeder)
		ps.SetLogger(logger)
		if *file != "" {
			ps.SetFile(*file)
		}
	}

	switch {
	case *all:
		if err := runAllSeeders(context.Background(), db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")

	case *present:
		if err := runSeeder(context.Background(), db, "presentations"); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("presentations seeded successfully")
	}
}
