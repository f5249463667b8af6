// Package postgres содержит реализацию репозитория пользователей для PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"gametrades/internal/gametrades/domain/entities"
	"gametrades/internal/gametrades/domain/services"
	"gametrades/internal/gametrades/ports/repositories"
	"gametrades/pkg/logger"
)

// PgxPoolInterface - подмножество pgxpool.Pool, нужное репозиторию.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
// Уникальность email и username обеспечивают индексы по LOWER(...).
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

const selectUser = `
        SELECT id, email, username, password_hash, created_at
        FROM users
`

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "FindByID", selectUser+"WHERE id = $1", id)
}

// FindByEmail находит пользователя по email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "FindByEmail", selectUser+"WHERE LOWER(email) = $1", entities.NormalizeEmail(email))
}

// FindByUsername находит пользователя по имени.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "FindByUsername", selectUser+"WHERE LOWER(username) = $1", entities.NormalizeUsername(username))
}

// Create вставляет пользователя. Нарушение уникального индекса
// возвращается как services.ErrStorageConflict.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (id, email, username, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			log.Info(ctx, "user index already taken", zap.String("constraint", pgErr.ConstraintName))
			return services.ErrStorageConflict
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

func (r *UserRepository) findOne(ctx context.Context, method, query string, arg string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", method))

	var user entities.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found")
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error querying user", zap.Error(err))
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return &user, nil
}
