// Package catalog читает рейтинг настольных игр из CSV-выгрузки.
package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"gametrades/internal/gametrades/domain/entities"
	svc "gametrades/internal/gametrades/ports/services"
	"gametrades/pkg/logger"
)

// Обязательные колонки выгрузки.
const (
	ColumnID            = "id"
	ColumnName          = "name"
	ColumnYearPublished = "yearpublished"
	ColumnRank          = "rank"
	ColumnBayesAverage  = "bayesaverage"
)

const (
	ErrOpenFile   = "failed to open catalog file"
	ErrReadHeader = "failed to read catalog header"
	ErrReadRow    = "failed to read catalog row"

	LogCatalogLoaded = "catalog loaded"
)

// ErrMissingColumn возвращается, если в заголовке нет обязательной колонки.
var ErrMissingColumn = errors.New("catalog column is missing")

// CSVLoader читает не более limit строк из файла path.
// Неположительный limit снимает ограничение.
type CSVLoader struct {
	path  string
	limit int
}

// NewCSVLoader создает загрузчик каталога.
func NewCSVLoader(path string, limit int) svc.GameSource {
	return &CSVLoader{path: path, limit: limit}
}

// Load открывает файл и разбирает его.
func (l *CSVLoader) Load(ctx context.Context) ([]entities.BoardGame, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrOpenFile, err)
	}
	defer f.Close()

	games, err := Parse(f, l.limit)
	if err != nil {
		return nil, err
	}

	logger.Log(ctx).Debug(ctx, LogCatalogLoaded, zap.String("path", l.path), zap.Int("games", len(games)))
	return games, nil
}

// Parse читает CSV с заголовком. Колонки ищутся по имени, лишние игнорируются.
func Parse(r io.Reader, limit int) ([]entities.BoardGame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrReadHeader, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, required := range []string{ColumnID, ColumnName, ColumnYearPublished, ColumnRank, ColumnBayesAverage} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	field := func(record []string, column string) string {
		if i := index[column]; i < len(record) {
			return record[i]
		}
		return ""
	}

	var games []entities.BoardGame
	for limit <= 0 || len(games) < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrReadRow, err)
		}

		games = append(games, entities.BoardGame{
			ID:            field(record, ColumnID),
			Name:          field(record, ColumnName),
			YearPublished: field(record, ColumnYearPublished),
			Rank:          field(record, ColumnRank),
			BayesAverage:  field(record, ColumnBayesAverage),
		})
	}

	return games, nil
}
