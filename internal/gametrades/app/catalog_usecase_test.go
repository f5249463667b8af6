package app_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gametrades/internal/gametrades/app"
	"gametrades/internal/gametrades/domain/entities"
)

func makeGames(n int) []entities.BoardGame {
	games := make([]entities.BoardGame, n)
	for i := range games {
		games[i] = entities.BoardGame{ID: strconv.Itoa(i + 1), Rank: strconv.Itoa(i + 1)}
	}
	return games
}

func TestCatalogUseCase_TopGames(t *testing.T) {
	ctx := context.Background()

	t.Run("Ограничение по умолчанию", func(t *testing.T) {
		source := &stubGameSource{games: makeGames(150)}

		games, err := app.NewCatalogUseCase(source, 0).TopGames(ctx)

		require.NoError(t, err)
		require.Len(t, games, app.DefaultCatalogLimit)
		assert.Equal(t, "1", games[0].ID)
		assert.Equal(t, "100", games[99].ID)
	})

	t.Run("Список короче лимита", func(t *testing.T) {
		source := &stubGameSource{games: makeGames(3)}

		games, err := app.NewCatalogUseCase(source, 10).TopGames(ctx)

		require.NoError(t, err)
		assert.Len(t, games, 3)
	})

	t.Run("Пустой источник", func(t *testing.T) {
		games, err := app.NewCatalogUseCase(&stubGameSource{}, 10).TopGames(ctx)

		require.NoError(t, err)
		assert.NotNil(t, games)
		assert.Empty(t, games)
	})

	t.Run("Результат запоминается", func(t *testing.T) {
		source := &stubGameSource{games: makeGames(5)}
		uc := app.NewCatalogUseCase(source, 10)

		_, err := uc.TopGames(ctx)
		require.NoError(t, err)
		_, err = uc.TopGames(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, source.calls)
	})

	t.Run("Ошибка загрузки повторяется", func(t *testing.T) {
		loadErr := errors.New("file missing")
		source := &stubGameSource{err: loadErr}
		uc := app.NewCatalogUseCase(source, 10)

		_, err := uc.TopGames(ctx)
		require.ErrorIs(t, err, loadErr)

		source.err = nil
		source.games = makeGames(2)
		games, err := uc.TopGames(ctx)
		require.NoError(t, err)
		assert.Len(t, games, 2)
		assert.Equal(t, 2, source.calls)
	})
}
