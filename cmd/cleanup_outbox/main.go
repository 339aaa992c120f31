package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/light-bringer/catalog-service/internal/pkg/clock"
	"github.com/light-bringer/catalog-service/internal/pkg/outbox"
)

const day = 24 * time.Hour

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cmd := &cli.Command{
		Name:  "cleanup_outbox",
		Usage: "Delete processed outbox events older than their retention",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database",
				Usage:   "Spanner database (projects/PROJECT/instances/INSTANCE/databases/DATABASE)",
				Sources: cli.EnvVars("SPANNER_DATABASE"),
			},
			&cli.IntFlag{
				Name:  "completed-retention",
				Usage: "Retention days for completed events",
				Value: 30,
			},
			&cli.IntFlag{
				Name:  "failed-retention",
				Usage: "Retention days for failed events",
				Value: 90,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Show what would be deleted without deleting",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			db := cmd.String("database")
			if db == "" {
				return errors.New("--database is required")
			}
			retention, err := retentionFromDays(cmd.Int("completed-retention"), cmd.Int("failed-retention"))
			if err != nil {
				return err
			}

			client, err := spanner.NewClient(ctx, db)
			if err != nil {
				return fmt.Errorf("failed to create Spanner client: %w", err)
			}
			defer client.Close()

			return cleanup(ctx, outbox.NewCleaner(client), retention, clock.NewRealClock(), cmd.Bool("dry-run"), log)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Fatal("Cleanup failed")
	}
}

func retentionFromDays(completed, failed int) (outbox.Retention, error) {
	if completed < 0 || failed < 0 {
		return outbox.Retention{}, errors.New("retention days must not be negative")
	}
	return outbox.Retention{
		Completed: time.Duration(completed) * day,
		Failed:    time.Duration(failed) * day,
	}, nil
}

func cleanup(ctx context.Context, cleaner *outbox.Cleaner, r outbox.Retention, clk clock.Clock, dryRun bool, log logrus.FieldLogger) error {
	now := clk.Now()
	log = log.WithFields(logrus.Fields{
		"completedCutoff": now.Add(-r.Completed).Format(time.RFC3339),
		"failedCutoff":    now.Add(-r.Failed).Format(time.RFC3339),
		"dryRun":          dryRun,
	})
	log.Info("Starting outbox cleanup")

	if dryRun {
		counts, err := cleaner.Expired(ctx, r, now)
		if err != nil {
			return err
		}
		var total int64
		for status, n := range counts {
			log.WithFields(logrus.Fields{"status": status, "count": n}).Info("Would delete events")
			total += n
		}
		log.WithField("total", total).Info("Dry run finished")
		return nil
	}

	deleted, err := cleaner.Purge(ctx, r, now)
	if err != nil {
		return err
	}
	log.WithField("deleted", deleted).Info("Cleanup completed")
	return nil
}
