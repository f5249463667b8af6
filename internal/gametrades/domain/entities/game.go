package entities

// BoardGame - строка рейтинга настольных игр.
type BoardGame struct {
	ID            string
	Name          string
	YearPublished string
	Rank          string
	BayesAverage  string
}
