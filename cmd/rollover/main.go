// Command rollover advances stale catalog deadlines to the next cycle, the
// same pass the server runs on its cron schedule.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/tsmith/scholarship-finder/internal/catalog"
)

func main() {
	var (
		catalogPath = flag.String("catalog", defaultCatalogPath(), "path to the JSON catalog")
		dryRun      = flag.Bool("dry-run", false, "report stale deadlines without saving")
	)
	flag.Parse()

	store := catalog.NewStore(*catalogPath)
	if err := store.Load(); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	var changes []catalog.Change
	if *dryRun {
		snapshot := store.All()
		changes = catalog.RollDeadlines(snapshot, time.Now())
	} else {
		var err error
		changes, err = store.Rollover(time.Now())
		if err != nil {
			log.Fatalf("Rollover failed: %v", err)
		}
	}

	if len(changes) == 0 {
		log.Println("No stale deadlines")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Name", "Field", "Old", "New"})
	for _, ch := range changes {
		t.AppendRow(table.Row{ch.Name, ch.Field, ch.Old, ch.New})
	}
	t.Render()

	if *dryRun {
		log.Printf("%d deadline(s) would be advanced (dry run, catalog not saved)", len(changes))
	} else {
		log.Printf("%d deadline(s) advanced", len(changes))
	}
}

func defaultCatalogPath() string {
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		return v
	}
	return "data/scholarship_database.json"
}
