package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gametrades/internal/gametrades/adapters/postgres"
	"gametrades/internal/gametrades/domain/entities"
	"gametrades/internal/gametrades/domain/services"
	"gametrades/internal/gametrades/ports/repositories"
	"gametrades/pkg/logger"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func testUser() *entities.User {
	return &entities.User{
		ID:           "7c0f6a1e-4f8e-4b8e-9d55-3c1d2a9c4b10",
		Email:        "alice@example.com",
		Username:     "Alice_1",
		PasswordHash: "c2FsdHNhbHQ=",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

var userColumns = []string{"id", "email", "username", "password_hash", "created_at"}

func TestUserRepository_Create(t *testing.T) {
	ctx := testContext(t)
	user := testUser()

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO users .+").
			WithArgs(user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := postgres.NewUserRepository(mock)
		require.NoError(t, repo.Create(ctx, user))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Нарушение уникального индекса", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO users .+").
			WithArgs(user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt).
			WillReturnError(&pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "idx_users_username_lower",
			})

		repo := postgres.NewUserRepository(mock)
		err = repo.Create(ctx, user)

		require.ErrorIs(t, err, services.ErrStorageConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Общая ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection error")
		mock.ExpectExec("INSERT INTO users .+").
			WithArgs(user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt).
			WillReturnError(dbError)

		repo := postgres.NewUserRepository(mock)
		err = repo.Create(ctx, user)

		require.ErrorIs(t, err, dbError)
		assert.NotErrorIs(t, err, services.ErrStorageConflict)
		assert.Contains(t, err.Error(), "error creating user")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Find(t *testing.T) {
	ctx := testContext(t)
	user := testUser()

	lookups := []struct {
		name  string
		query string
		arg   string
		find  func(ctx context.Context, repo repositories.UserRepository) (*entities.User, error)
	}{
		{
			name:  "по ID",
			query: `SELECT .+ FROM users\s+WHERE id = \$1`,
			arg:   user.ID,
			find: func(ctx context.Context, repo repositories.UserRepository) (*entities.User, error) {
				return repo.FindByID(ctx, user.ID)
			},
		},
		{
			name:  "по email без учета регистра",
			query: `SELECT .+ FROM users\s+WHERE LOWER\(email\) = \$1`,
			arg:   "alice@example.com",
			find: func(ctx context.Context, repo repositories.UserRepository) (*entities.User, error) {
				return repo.FindByEmail(ctx, "ALICE@Example.com")
			},
		},
		{
			name:  "по имени без учета регистра",
			query: `SELECT .+ FROM users\s+WHERE LOWER\(username\) = \$1`,
			arg:   "alice_1",
			find: func(ctx context.Context, repo repositories.UserRepository) (*entities.User, error) {
				return repo.FindByUsername(ctx, "ALICE_1")
			},
		},
	}

	for _, tt := range lookups {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectQuery(tt.query).
				WithArgs(tt.arg).
				WillReturnRows(pgxmock.NewRows(userColumns).
					AddRow(user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt))

			found, err := tt.find(ctx, postgres.NewUserRepository(mock))
			require.NoError(t, err)
			assert.Equal(t, user, found)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindErrors(t *testing.T) {
	ctx := testContext(t)

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM users").
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		_, err = postgres.NewUserRepository(mock).FindByUsername(ctx, "nobody")
		require.ErrorIs(t, err, entities.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("connection reset")
		mock.ExpectQuery("SELECT .+ FROM users").
			WithArgs("x@example.com").
			WillReturnError(dbError)

		_, err = postgres.NewUserRepository(mock).FindByEmail(ctx, "x@example.com")
		require.ErrorIs(t, err, dbError)
		assert.NotErrorIs(t, err, entities.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
