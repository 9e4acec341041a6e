package helper

//nolint:revive
import (
	"appointly/config"
	"errors"
	"fmt"
	"net"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		net.JoinHostPort(config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port),
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MigrationTable,
	)

	mig, err := migrate.New(
		"file://migrations/postgres",
		connectionString,
	)

	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

type action struct {
	run     func(mig *migrate.Migrate) error
	failure string
	success string
}

var actions = map[string]action{
	"up": {
		run:     func(mig *migrate.Migrate) error { return mig.Up() },
		failure: "error running migrations",
		success: "Database migrations completed successfully",
	},
	"step-up": {
		run:     func(mig *migrate.Migrate) error { return mig.Steps(1) },
		failure: "error applying next migration",
		success: "Next database migration applied successfully",
	},
	"down": {
		run:     func(mig *migrate.Migrate) error { return mig.Steps(-1) },
		failure: "error rolling back migrations",
		success: "Database migrations rolled back successfully",
	},
	"drop": {
		run:     func(mig *migrate.Migrate) error { return mig.Down() },
		failure: "error rolling back migrations",
		success: "Database migrations rolled back successfully",
	},
}

var errUnknownAction = errors.New("unknown migration action")

func Runner(config *config.Config, name string) error {
	act, ok := actions[name]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownAction, name)
	}

	mig, err := getConnection(config)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := act.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", act.failure, err)
	}

	log.Info().Msg(act.success)

	return nil
}

// Version logs the applied schema version of the appointments database.
func Version(config *config.Config) error {
	mig, err := getConnection(config)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Msg("No migrations applied yet")

		return nil
	}

	if err != nil {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current database migration version")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, "up")
}

func StepUp(config *config.Config) error {
	return Runner(config, "step-up")
}

func Down(config *config.Config) error {
	return Runner(config, "down")
}

func Drop(config *config.Config) error {
	return Runner(config, "drop")
}
