package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AustinOrphan/training-plan-generator/internal/config"
	"github.com/AustinOrphan/training-plan-generator/internal/export"
	"github.com/AustinOrphan/training-plan-generator/internal/generator"
	"github.com/AustinOrphan/training-plan-generator/internal/plan"
	"github.com/AustinOrphan/training-plan-generator/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configPath := flag.String("config", "training-plan.yaml", "plan request file")
	runsPath := flag.String("runs", "", "run history CSV (overrides runs_csv in the request file)")
	initConfig := flag.Bool("init", false, "write an example request file and exit")
	exportDir := flag.String("export", "", "write plan artifacts to this directory and exit")
	format := flag.String("format", "all", "export format: json|csv|ics|xlsx|all")
	summary := flag.Bool("summary", false, "print a text summary and exit")
	flag.Parse()

	if *initConfig {
		if err := config.CreateExample(*configPath); err != nil {
			return fmt.Errorf("creating example request: %w", err)
		}
		fmt.Printf("Wrote %s. Edit it and rerun.\n", *configPath)
		return nil
	}

	// Load the plan request
	req, err := config.Load(*configPath)
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Printf("No request file found. Creating %s...\n", *configPath)
		if err := config.CreateExample(*configPath); err != nil {
			return fmt.Errorf("creating example request: %w", err)
		}
		fmt.Println("\nEdit it with your goal, dates and training days, then rerun.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading request: %w", err)
	}

	cfg, err := req.ToPlanConfig()
	if err != nil {
		return fmt.Errorf("request %s: %w", *configPath, err)
	}

	// Load run history if the flag or the request names a file
	var runs []plan.RunRecord
	if path := firstNonEmpty(*runsPath, req.RunsCSV); path != "" {
		runs, err = config.LoadRuns(path)
		if err != nil {
			return err
		}
	}

	// Resolve the clock once; everything downstream is deterministic in it.
	p, err := generator.Generate(cfg, runs, time.Now())
	if err != nil {
		return fmt.Errorf("generating plan: %w", err)
	}

	for _, w := range p.Warnings {
		slog.Warn("scheduling degraded", "reason", w)
	}

	if *exportDir != "" {
		formats, err := export.ParseFormat(*format)
		if err != nil {
			return err
		}
		paths, err := export.WriteFiles(*exportDir, p, formats)
		if err != nil {
			return err
		}
		for _, path := range paths {
			fmt.Println(path)
		}
		return nil
	}

	if *summary {
		printSummary(p, tui.NewUnits(req.Display))
		return nil
	}

	// Launch the TUI viewer
	app := tui.NewApp(p, req.Display)
	prog := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func printSummary(p *plan.TrainingPlan, units tui.Units) {
	fmt.Printf("%s Training Plan  (%s, plan %s)\n",
		p.Config.Goal.Label(), p.Methodology, p.ID.String()[:8])

	end := p.Config.StartDate.AddDate(0, 0, p.Config.TotalWeeks*7-1)
	fmt.Printf("%d weeks, %s to %s",
		p.Config.TotalWeeks,
		p.Config.StartDate.Format("Mon Jan 2 2006"),
		end.Format("Mon Jan 2 2006"))
	if !p.Config.RaceDate.IsZero() {
		fmt.Printf("  (race day %s)", p.Config.RaceDate.Format("Mon Jan 2 2006"))
	}
	fmt.Println()
	fmt.Println()

	s := p.Summary
	fmt.Println("Phases:")
	for _, ph := range s.Phases {
		fmt.Printf("  %-9s  %2d wk  %10s  %3d workouts\n",
			ph.Phase.Label(), ph.Weeks, units.FormatDistance(ph.DistanceMeters), ph.WorkoutCount)
	}
	fmt.Println()

	fmt.Printf("Volume:    %s total, %s avg week, %s peak week\n",
		units.FormatDistance(s.TotalDistanceMeters),
		units.FormatDistance(s.AvgWeeklyDistanceMeters),
		units.FormatDistance(s.PeakWeeklyDistanceMeters))
	fmt.Printf("Sessions:  %d workouts, %d long runs, %d rest days, %.0f TSS\n",
		s.TotalWorkouts, s.LongRunCount, s.RestDays, s.TotalTSS)
	fmt.Printf("Intensity: %.1f%% easy / %.1f%% moderate / %.1f%% hard\n",
		s.Intensity.EasyPercent, s.Intensity.ModeratePercent, s.Intensity.HardPercent)

	if len(p.Warnings) > 0 {
		fmt.Println()
		fmt.Println("Warnings:")
		for _, w := range p.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
