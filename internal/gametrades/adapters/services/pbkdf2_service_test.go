package services_test

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gametrades/internal/gametrades/adapters/services"
	domain "gametrades/internal/gametrades/domain/services"
)

// Небольшое число итераций ускоряет тесты, формат хэша от него не зависит.
const testIterations = 1000

func TestPBKDF2_HashAndVerify(t *testing.T) {
	ctx := context.Background()
	svc := services.NewPBKDF2(testIterations)

	hash, err := svc.Hash(ctx, "password123")
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, blob, domain.PasswordSaltLength+domain.PasswordKeyLength)

	assert.True(t, svc.Verify(ctx, "password123", hash))
	assert.False(t, svc.Verify(ctx, "password124", hash))
	assert.False(t, svc.Verify(ctx, "", hash))
}

func TestPBKDF2_HashEmptyPassword(t *testing.T) {
	hash, err := services.NewPBKDF2(testIterations).Hash(context.Background(), "")

	require.ErrorIs(t, err, domain.ErrInvalidPassword)
	assert.Empty(t, hash)
}

func TestPBKDF2_SaltIsRandom(t *testing.T) {
	ctx := context.Background()
	svc := services.NewPBKDF2(testIterations)

	first, err := svc.Hash(ctx, "same-password")
	require.NoError(t, err)
	second, err := svc.Hash(ctx, "same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, svc.Verify(ctx, "same-password", first))
	assert.True(t, svc.Verify(ctx, "same-password", second))
}

func TestPBKDF2_VerifyMalformedHash(t *testing.T) {
	ctx := context.Background()
	svc := services.NewPBKDF2(testIterations)

	tests := []struct {
		name string
		hash string
	}{
		{name: "не base64", hash: "%%%not-base64%%%"},
		{name: "пустая строка", hash: ""},
		{name: "короткий блоб", hash: base64.StdEncoding.EncodeToString([]byte("short"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, svc.Verify(ctx, "password123", tt.hash))
		})
	}
}

func TestPBKDF2_IterationsMustMatch(t *testing.T) {
	ctx := context.Background()

	hash, err := services.NewPBKDF2(testIterations).Hash(ctx, "password123")
	require.NoError(t, err)

	assert.False(t, services.NewPBKDF2(testIterations+1).Verify(ctx, "password123", hash))
}

func TestNewPBKDF2_DefaultIterations(t *testing.T) {
	ctx := context.Background()

	hash, err := services.NewPBKDF2(0).Hash(ctx, "password123")
	require.NoError(t, err)

	assert.True(t, services.NewPBKDF2(domain.PasswordIterations).Verify(ctx, "password123", hash))
}
