package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// target names the Spanner database the migrations are applied to.
type target struct {
	project    string
	instance   string
	database   string
	migrations string
}

func (t target) projectPath() string  { return "projects/" + t.project }
func (t target) instancePath() string { return t.projectPath() + "/instances/" + t.instance }
func (t target) databasePath() string { return t.instancePath() + "/databases/" + t.database }

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cmd := &cli.Command{
		Name:  "migrate",
		Usage: "Create the catalog Spanner database and apply DDL migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "project",
				Usage:   "GCP project ID",
				Sources: cli.EnvVars("SPANNER_PROJECT_ID"),
				Value:   "test-project",
			},
			&cli.StringFlag{
				Name:    "instance",
				Usage:   "Spanner instance ID",
				Sources: cli.EnvVars("SPANNER_INSTANCE_ID"),
				Value:   "dev-instance",
			},
			&cli.StringFlag{
				Name:    "database",
				Usage:   "Spanner database ID",
				Sources: cli.EnvVars("SPANNER_DATABASE_ID"),
				Value:   "product-catalog-db",
			},
			&cli.StringFlag{
				Name:  "migrations",
				Usage: "Directory containing migration SQL files",
				Value: "migrations",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			t := target{
				project:    cmd.String("project"),
				instance:   cmd.String("instance"),
				database:   cmd.String("database"),
				migrations: cmd.String("migrations"),
			}
			if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
				log.WithField("host", host).Info("Using Spanner emulator")
			}
			return run(ctx, t, log)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Fatal("Migration failed")
	}
	log.Info("Migrations completed successfully")
}

func run(ctx context.Context, t target, log logrus.FieldLogger) error {
	if err := ensureInstance(ctx, t, log); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}
	if err := ensureDatabase(ctx, t, log); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}
	if err := applyMigrations(ctx, t, log); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func ensureInstance(ctx context.Context, t target, log logrus.FieldLogger) error {
	log = log.WithField("instance", t.instance)

	admin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer admin.Close()

	_, err = admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: t.instancePath()})
	if err == nil {
		log.Info("Instance already exists")
		return nil
	}
	if status.Code(err) != codes.NotFound {
		log.WithError(err).Warn("Unexpected error checking instance")
		return nil
	}

	log.Info("Creating instance")
	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     t.projectPath(),
		InstanceId: t.instance,
		Instance: &instancepb.Instance{
			Config:      t.projectPath() + "/instanceConfigs/emulator-config",
			DisplayName: "Development Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			return fmt.Errorf("failed to create instance: %w", err)
		}
		log.Info("Instance already exists")
		return nil
	}

	// The emulator may finish the operation before Wait is called.
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		log.WithError(err).Warn("Instance creation did not report success")
	}
	log.Info("Instance created")
	return nil
}

func ensureDatabase(ctx context.Context, t target, log logrus.FieldLogger) error {
	log = log.WithField("database", t.database)

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer admin.Close()

	_, err = admin.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: t.databasePath()})
	if err == nil {
		log.Info("Database already exists")
		return nil
	}

	if status.Code(err) == codes.NotFound {
		log.Info("Creating database")
		op, err := admin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
			Parent:          t.instancePath(),
			CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", t.database),
		})
		if err != nil {
			if status.Code(err) != codes.AlreadyExists {
				return fmt.Errorf("failed to create database: %w", err)
			}
			log.Info("Database already exists")
			return nil
		}
		if _, err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to wait for database creation: %w", err)
		}
		log.Info("Database created")
		return nil
	}

	if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
		log.WithError(err).Warn("Proceeding with database in emulator mode")
		return nil
	}
	return fmt.Errorf("failed to check database: %w", err)
}

func applyMigrations(ctx context.Context, t target, log logrus.FieldLogger) error {
	files, err := migrationFiles(t.migrations)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.WithField("dir", t.migrations).Info("No migration files found")
		return nil
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer admin.Close()

	for _, file := range files {
		name := filepath.Base(file)
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		statements := splitDDLStatements(string(content))
		if len(statements) == 0 {
			continue
		}

		log.WithFields(logrus.Fields{"file": name, "statements": len(statements)}).Info("Applying migration")
		op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   t.databasePath(),
			Statements: statements,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", name, err)
		}
	}

	return nil
}

// migrationFiles returns the .sql files in dir in lexical order.
func migrationFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to list migration files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// splitDDLStatements drops blank lines and "--" comment lines, then splits the
// remainder on semicolons.
func splitDDLStatements(content string) []string {
	var cleaned []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var result []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}
