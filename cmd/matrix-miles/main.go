package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/peterbourgon/ff"
	"github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/McCune1224/matrix-miles/internal/pkg/calendar"
	"github.com/McCune1224/matrix-miles/internal/pkg/config"
	"github.com/McCune1224/matrix-miles/internal/pkg/display"
	"github.com/McCune1224/matrix-miles/internal/pkg/strava"
)

type args struct {
	year           int
	month          int
	maxDays        int
	activitiesPath string
	tui            bool
}

func parseFlags(name string, argv []string) (args, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	now := time.Now()

	a := args{}
	fs.IntVar(&a.year, "year", now.Year(), "calendar year to render")
	fs.IntVar(&a.month, "month", int(now.Month()), "calendar month to render (1-12)")
	fs.IntVar(&a.maxDays, "max-days", 31, "maximum unique activity days to collect")
	fs.StringVar(&a.activitiesPath, "activities", "", "JSON array of activities (file path, or - for stdin); omit to only print a refreshed access token")
	fs.BoolVar(&a.tui, "tui", false, "browse the calendar interactively")
	_ = fs.String("config", "", "config file (optional)")

	err := ff.Parse(fs, argv,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarPrefix("MILES"),
	)

	return a, err
}

func setup() (*config.Config, error) {
	_, err := maxprocs.Set()
	if err != nil {
		return nil, fmt.Errorf("error setting GOMAXPROCS %w", err)
	}

	return config.Load()
}

func loadActivities(path string) ([]calendar.Activity, error) {
	var in io.Reader

	if path == "-" {
		in = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error opening activities file %w", err)
		}
		defer file.Close()
		in = file
	}

	var records []calendar.Activity
	if err := json.NewDecoder(in).Decode(&records); err != nil {
		return nil, fmt.Errorf("error decoding activities JSON %w", err)
	}

	return records, nil
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})

	log := logrus.NewEntry(logger).WithField("component", "matrix-miles")
	log.Info("starting up")

	defer log.Info("shutting down")

	a, err := parseFlags("matrix-miles", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.WithError(err).Error()
		os.Exit(1)
	}

	cfg, err := setup()
	if err != nil {
		log.WithError(err).Error()
		os.Exit(1)
	}

	stravaClient := &strava.Client{
		Log: log,
		Config: strava.Config{
			ClientID:     cfg.StravaClientID,
			ClientSecret: cfg.StravaClientSecret,
			TokenURL:     cfg.StravaTokenURL,
		},
		HTTP: &http.Client{
			Timeout: cfg.HTTPTimeout(),
		},
	}

	ctx := context.Background()

	tokens, err := stravaClient.RefreshToken(ctx, cfg.StravaRefreshToken)
	if err != nil {
		log.WithError(err).Error()
		os.Exit(1)
	}

	if reported := tokens.ReportedErrors(); reported != nil {
		log.WithError(reported).Warn("token endpoint reported errors")
	}

	log.WithField("expires_at", tokens.ExpiresAt).Info("access token refreshed")

	if a.activitiesPath == "" {
		// Token-only mode: the activity fetcher is an external
		// collaborator and wants the fresh token on stdout.
		fmt.Println(tokens.AccessToken)
		return
	}

	records, err := loadActivities(a.activitiesPath)
	if err != nil {
		log.WithError(err).Error()
		os.Exit(1)
	}

	month := calendar.Month{Year: a.year, Month: a.month}
	if err := month.Validate(); err != nil {
		log.WithError(err).Error()
		os.Exit(1)
	}

	if a.tui {
		if err := display.Run(records, month, a.maxDays); err != nil {
			log.WithError(err).Error()
			os.Exit(1)
		}
		return
	}

	days, stats := calendar.ExtractDaysStats(calendar.FilterMonth(records, month), a.maxDays)
	if stats.Skipped > 0 || stats.OutOfRange > 0 {
		log.WithFields(logrus.Fields{
			"skipped":      stats.Skipped,
			"out_of_range": stats.OutOfRange,
		}).Warn("some activity records were malformed")
	}

	grid, err := calendar.Render(month, days)
	if err != nil {
		log.WithError(err).Error()
		os.Exit(1)
	}

	fmt.Print(grid)
}
