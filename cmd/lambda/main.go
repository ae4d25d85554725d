package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/McCune1224/matrix-miles/internal/pkg/calendar"
	"github.com/McCune1224/matrix-miles/internal/pkg/config"
	"github.com/McCune1224/matrix-miles/internal/pkg/strava"
)

const defaultMaxDays = 31

// Event is produced by the upstream activity fetcher: one month plus
// the already-retrieved activity records for it.
type Event struct {
	Year       int                 `json:"year"`
	Month      int                 `json:"month"`
	MaxDays    int                 `json:"max_days"`
	Activities []calendar.Activity `json:"activities"`
}

type Response struct {
	Month      string `json:"month"`
	ActiveDays int    `json:"active_days"`
	MessageID  string `json:"message_id"`
}

func setup() (*config.Config, error) {
	_, err := maxprocs.Set()
	if err != nil {
		return nil, fmt.Errorf("error setting GOMAXPROCS %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cfg.TopicARN == "" {
		return nil, fmt.Errorf("TOPIC_ARN is required")
	}

	return cfg, nil
}

func HandleRequest(ctx context.Context, event Event) (Response, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	log := logrus.NewEntry(logger).WithField("component", "matrix-miles-notifier")
	log.Info("starting up")

	defer log.Info("shutting down")

	cfg, err := setup()
	if err != nil {
		log.WithError(err).Error()
		os.Exit(1)
	}

	month := calendar.Month{Year: event.Year, Month: event.Month}
	if err := month.Validate(); err != nil {
		return Response{}, err
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

	// Credential liveness check before publishing anything: a broken
	// refresh token should surface here, not in next month's fetch.
	tokens, err := stravaClient.RefreshToken(ctx, cfg.StravaRefreshToken)
	if err != nil {
		return Response{}, err
	}

	if reported := tokens.ReportedErrors(); reported != nil {
		log.WithError(reported).Warn("token endpoint reported errors")
	}

	maxDays := event.MaxDays
	if maxDays <= 0 {
		maxDays = defaultMaxDays
	}

	days, stats := calendar.ExtractDaysStats(calendar.FilterMonth(event.Activities, month), maxDays)
	if stats.Skipped > 0 || stats.OutOfRange > 0 {
		log.WithFields(logrus.Fields{
			"skipped":      stats.Skipped,
			"out_of_range": stats.OutOfRange,
		}).Warn("some activity records were malformed")
	}

	grid, err := calendar.Render(month, days)
	if err != nil {
		return Response{}, err
	}

	awsConfig, err := awscfg.LoadDefaultConfig(ctx)
	if err != nil {
		log.WithError(err).Error()
		os.Exit(1)
	}

	snsClient := sns.NewFromConfig(awsConfig)

	input := &sns.PublishInput{
		Message:  &grid,
		TopicArn: &cfg.TopicARN,
	}

	output, err := snsClient.Publish(ctx, input)
	if err != nil {
		return Response{}, fmt.Errorf("error publishing to AWS SNS topic %s: %w", cfg.TopicARN, err)
	}

	messageID := ""
	if output.MessageId != nil {
		messageID = *output.MessageId
	}

	return Response{
		Month:      month.String(),
		ActiveDays: days.Len(),
		MessageID:  messageID,
	}, nil
}

func main() {
	lambda.Start(HandleRequest)
}
