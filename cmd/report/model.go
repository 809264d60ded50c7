package report

import "strings"

// Language identifies one of the bulletin languages published by the bureau.
type Language string

const (
	Chinese    Language = "zh"
	Portuguese Language = "pt"
	English    Language = "en"
)

// Languages lists the supported languages in display order.
var Languages = []Language{Chinese, Portuguese, English}

// ParseLanguage validates a language code such as "pt".
func ParseLanguage(code string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(code)))
	for _, known := range Languages {
		if l == known {
			return l, nil
		}
	}
	return "", NewUnknownLanguageError(code)
}

func (l Language) String() string { return string(l) }

// ForecastEntry is a single day of the forecast.
type ForecastEntry struct {
	Date        string
	Tide        string
	Description string
}

// DocumentContext holds every value available to a single render.
type DocumentContext struct {
	TodaySituation string
	Author         string
	Pubdate        string
	Language       Language
	CurrentTime    string
	Forecasts      []ForecastEntry
}

// Placeholder names understood by the main and item templates.
const (
	PlaceholderTodaySituation = "today_situation"
	PlaceholderAuthor         = "author"
	PlaceholderPubdate        = "pubdate"
	PlaceholderLanguage       = "language"
	PlaceholderForecasts      = "forecasts"
	PlaceholderCurrentTime    = "current_time"

	PlaceholderDate        = "date"
	PlaceholderTide        = "tide"
	PlaceholderDescription = "description"
)

// values returns the document-level placeholder mapping, with forecasts
// already rendered.
func (dc DocumentContext) values(forecasts string) map[string]string {
	return map[string]string{
		PlaceholderTodaySituation: dc.TodaySituation,
		PlaceholderAuthor:         dc.Author,
		PlaceholderPubdate:        dc.Pubdate,
		PlaceholderLanguage:       dc.Language.String(),
		PlaceholderCurrentTime:    dc.CurrentTime,
		PlaceholderForecasts:      forecasts,
	}
}

func (e ForecastEntry) values() map[string]string {
	return map[string]string{
		PlaceholderDate:        e.Date,
		PlaceholderTide:        e.Tide,
		PlaceholderDescription: e.Description,
	}
}
