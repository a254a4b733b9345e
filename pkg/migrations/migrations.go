package migrations

import (
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
)

// Do applies all pending migrations from dir to the database.
func Do(connectionString, dir string, logger *slog.Logger) error {
	m, err := migrate.New("file://"+dir, connectionString)
	if err != nil {
		return errors.Wrap(err, "create migrator")
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Debug("migrations: no change", slog.String("dir", dir))
		return nil
	} else if err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	version, dirty, err := m.Version()
	if err != nil {
		return errors.Wrap(err, "read migration version")
	}

	logger.Info("migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}
