package postgres

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"gametrades/pkg/logger"
)

// Константы для сообщений об ошибках миграций.
const (
	ErrResolveMigrationsPath   = "failed to resolve migrations path"
	ErrCreateMigrationInstance = "failed to create migration instance"
	ErrApplyMigrations         = "failed to apply migrations"
)

// MigrationsSource превращает каталог миграций в URL источника file://.
func MigrationsSource(dir string) (string, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrResolveMigrationsPath, err)
	}
	return "file://" + filepath.ToSlash(absPath), nil
}

// MigrateDSN применяет миграции из каталога dir к базе по URL dsn.
func MigrateDSN(ctx context.Context, dsn, dir string) error {
	log := logger.Log(ctx)

	source, err := MigrationsSource(dir)
	if err != nil {
		log.Error(ctx, ErrResolveMigrationsPath, zap.Error(err), zap.String("dir", dir))
		return err
	}

	m, err := migrate.New(source, dsn)
	if err != nil {
		log.Error(ctx, ErrCreateMigrationInstance, zap.Error(err), zap.String("source", source))
		return fmt.Errorf("%s: %w", ErrCreateMigrationInstance, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error(ctx, ErrApplyMigrations, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrApplyMigrations, err)
	}

	log.Info(ctx, LogMigrationsApplied, zap.String("source", source))
	return nil
}
