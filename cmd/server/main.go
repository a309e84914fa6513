package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/tsmith/scholarship-finder/internal/api"
	"github.com/tsmith/scholarship-finder/internal/catalog"
	"github.com/tsmith/scholarship-finder/internal/config"
	"github.com/tsmith/scholarship-finder/internal/scheduler"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	rules, err := catalog.LoadRules(cfg.RulesPath)
	if err != nil {
		log.Fatalf("Failed to load rule table: %v", err)
	}

	store := catalog.NewStore(cfg.CatalogPath)
	if err := store.Load(); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	if cfg.RolloverIntervalHours > 0 {
		sched := scheduler.New(store, cfg.RolloverIntervalHours)
		if err := sched.Start(); err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	} else {
		log.Println("Deadline rollover disabled (ROLLOVER_INTERVAL_HOURS=0)")
	}

	srv := api.NewServer(store, rules)
	log.Printf("Server starting on port %s...", cfg.Port)
	if err := srv.Start(cfg.Port); err != nil {
		log.Fatal(err)
	}
}
