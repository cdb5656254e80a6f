package main

import (
	"flag"
	"log"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/config"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/services"
)

// Recomputes article view and like counters from the article_views and
// likes tables. The live counters use atomic increments, so they only
// drift after manual data surgery or a partially applied restore.
func main() {
	dryRun := flag.Bool("dry-run", false, "report drift without fixing it")
	flag.Parse()

	config.LoadConfig()
	database.Connect()

	svc := services.NewEngagement(database.DB)
	report, err := svc.ReconcileCounters(*dryRun)
	if err != nil {
		log.Fatalf("❌ Reconcile failed: %v", err)
	}

	mode := "fixed"
	if *dryRun {
		mode = "would fix"
	}
	log.Printf("✅ Checked %d articles in %s", report.ArticlesChecked, report.FinishedAt.Sub(report.StartedAt))
	log.Printf("   %s %d view counters, %d like counters", mode, report.ViewsCorrected, report.LikesCorrected)
}
