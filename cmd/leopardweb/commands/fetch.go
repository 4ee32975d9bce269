package commands

import (
	"context"
	"log/slog"
	"os"
	"time"

	"leopardweb-catalog/lib/export"
	"leopardweb-catalog/lib/scrapers/leopardweb"
	"leopardweb-catalog/lib/util/serviceutil"

	"github.com/jedib0t/go-pretty/v6/progress"
)

func runFetch(ctx context.Context, term string) {
	outFormat, err := export.ParseFormat(format)
	if err != nil {
		serviceutil.Fatal("bad --format", err)
	}

	cfg := loadConfig()
	client := newClient(cfg)

	slog.InfoContext(ctx, "fetching course catalog", "term", term)
	catalog, err := client.FetchCatalog(ctx, term, leopardweb.FetchOptions{
		PageSize: cfg.PageSize,
		Progress: func(fetched, total int) {
			slog.InfoContext(ctx, "fetched page", "courses", fetched, "total", total)
		},
	})
	if err != nil {
		serviceutil.Fatal("failed to fetch catalog", err)
	}
	slog.InfoContext(ctx, "catalog complete", "courses", len(catalog.Courses))

	if !quick && len(catalog.Courses) > 0 {
		err = enrich(ctx, client, &catalog)
		if err != nil {
			serviceutil.Fatal("detail fetch interrupted", err)
		}
	}

	path := outputPath
	if path == "" {
		path = export.DefaultPath(term, outFormat)
	}
	err = export.Write(path, outFormat, catalog)
	if err != nil {
		serviceutil.Fatal("failed to write output", err)
	}
	slog.InfoContext(ctx, "saved courses", "count", len(catalog.Courses), "file", path)
}

func enrich(ctx context.Context, client *leopardweb.Client, catalog *leopardweb.Catalog) error {
	slog.InfoContext(ctx, "fetching per-course details, this may take a few minutes",
		"courses", len(catalog.Courses))

	if quiet {
		return client.Enrich(ctx, catalog, leopardweb.EnrichOptions{})
	}

	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stderr)
	pw.SetTrackerLength(30)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	go pw.Render()

	tracker := &progress.Tracker{
		Message: "fetching details",
		Total:   int64(len(catalog.Courses)),
	}
	pw.AppendTracker(tracker)

	err := client.Enrich(ctx, catalog, leopardweb.EnrichOptions{
		Progress: func(done, total int) {
			tracker.SetValue(int64(done))
		},
	})

	tracker.MarkAsDone()
	pw.Stop()
	for pw.IsRenderInProgress() {
		time.Sleep(time.Millisecond * 10)
	}
	return err
}
