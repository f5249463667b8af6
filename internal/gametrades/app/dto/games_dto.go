package dto

import (
	"strconv"

	"gametrades/internal/gametrades/domain/entities"
)

// GameResponse - строка рейтинга игр.
type GameResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Year   string `json:"year"`
	Rank   string `json:"rank"`
	Rating string `json:"rating"`
}

// TopGamesResponse содержит рейтинг игр.
type TopGamesResponse struct {
	Games []GameResponse `json:"games"`
}

// NewTopGamesResponse преобразует игры каталога в ответ API.
func NewTopGamesResponse(games []entities.BoardGame) TopGamesResponse {
	out := make([]GameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, GameResponse{
			ID:     g.ID,
			Name:   g.Name,
			Year:   g.YearPublished,
			Rank:   g.Rank,
			Rating: FormatRating(g.BayesAverage),
		})
	}
	return TopGamesResponse{Games: out}
}

// FormatRating округляет рейтинг до двух знаков. Нечисловое значение
// возвращается как есть.
func FormatRating(raw string) string {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
