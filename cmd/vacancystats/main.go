package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"vacancystats/internal/config"
	"vacancystats/internal/models"
	"vacancystats/internal/service"
	"vacancystats/internal/stats"
	"vacancystats/internal/ui"
)

func main() {
	languages := flag.String("languages", "", "Comma-separated list of languages to collect (default: built-in list)")
	debug := flag.Bool("debug", false, "Enable debug mode")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	ui.PrintBanner(*silence || *noBanner)

	cfg := config.Load()
	if *languages != "" {
		cfg.Languages = splitLanguages(*languages)
	}
	if len(cfg.Languages) == 0 {
		fmt.Fprintln(os.Stderr, "No languages to collect")
		os.Exit(1)
	}

	ctx := context.Background()

	runs := []struct {
		title   string
		adapter service.Adapter
	}{
		{"Moscow vacancies SuperJob", service.NewSuperJob(cfg.SuperJob)},
		{"Moscow vacancies HeadHunter", service.NewHeadHunter(cfg.HH)},
	}

	for _, run := range runs {
		report := collect(ctx, run.adapter, cfg.Languages, *debug)
		ui.RenderReport(os.Stdout, report, run.title)
		fmt.Println()
	}
}

// collect gathers statistics language by language so one failed
// language does not cost the rest of the service's report.
func collect(ctx context.Context, adapter service.Adapter, languages []string, debug bool) *models.Report {
	collector := stats.Collector{Adapter: adapter}
	report := models.NewReport()

	fmt.Printf("Collecting %s...\n", adapter.Name())
	bar := pb.StartNew(len(languages))

	for _, language := range languages {
		langStats, err := collector.Language(ctx, language)
		bar.Increment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error collecting %q from %s: %v\n", language, adapter.Name(), err)
			continue
		}
		if debug {
			fmt.Printf("%s %q: found=%d processed=%d average=%d\n",
				adapter.Name(), language, langStats.Found, langStats.Processed, langStats.Average)
		}
		report.Add(language, langStats)
	}

	bar.Finish()
	return report
}

// splitLanguages parses the -languages flag, dropping empty entries
func splitLanguages(raw string) []string {
	var languages []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			languages = append(languages, part)
		}
	}
	return languages
}
