package app_test

import (
	"context"
	"sync/atomic"

	"github.com/stretchr/testify/mock"

	"gametrades/internal/gametrades/domain/entities"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return m.user(m.Called(ctx, username))
}

func (m *mockUserRepository) user(args mock.Arguments) (*entities.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) bool {
	args := m.Called(ctx, password, hash)
	return args.Bool(0)
}

type mockUserDirectory struct {
	mock.Mock
}

func (m *mockUserDirectory) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserDirectory) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserDirectory) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserDirectory) Create(ctx context.Context, email, username, password string) (*entities.User, error) {
	args := m.Called(ctx, email, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

// countingFetcher отдает заранее заданную страницу и считает обращения.
type countingFetcher struct {
	page  []byte
	err   error
	calls atomic.Int32
}

func (f *countingFetcher) Fetch(context.Context, string) ([]byte, error) {
	f.calls.Add(1)
	return f.page, f.err
}

type stubExtractor struct {
	url string
	err error
}

func (e stubExtractor) Extract([]byte) (string, error) {
	return e.url, e.err
}

type stubGameSource struct {
	games []entities.BoardGame
	err   error
	calls int
}

func (s *stubGameSource) Load(context.Context) ([]entities.BoardGame, error) {
	s.calls++
	return s.games, s.err
}
