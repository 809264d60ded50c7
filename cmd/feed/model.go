package feed

import (
	"time"

	"github.com/sumwatshade/macauwx/cmd/report"
)

// Fallback values for elements missing from the feed.
const (
	DefaultTodaySituation = "No data available"
	DefaultDate           = "Unknown"
	DefaultDescription    = "No description"
	NilTide               = "NIL"
)

// CurrentTimeLayout formats the generation timestamp.
const CurrentTimeLayout = "2006-01-02 15:04:05"

// Bulletin is the decoded content of one forecast XML document.
type Bulletin struct {
	Author         string
	Pubdate        string
	Language       string // SysLanguage as published
	TodaySituation string
	Forecasts      []Forecast
}

// Forecast is one WeatherForecast element.
type Forecast struct {
	ValidFor    string
	Description string
	Tide        string
}

// DocumentContext converts the bulletin into the values a report is rendered
// from. A NIL tide is shown as nilTide.
func (b Bulletin) DocumentContext(lang report.Language, nilTide string, now time.Time) report.DocumentContext {
	entries := make([]report.ForecastEntry, 0, len(b.Forecasts))
	for _, f := range b.Forecasts {
		tide := f.Tide
		if tide == NilTide {
			tide = nilTide
		}
		entries = append(entries, report.ForecastEntry{
			Date:        f.ValidFor,
			Tide:        tide,
			Description: f.Description,
		})
	}
	return report.DocumentContext{
		TodaySituation: b.TodaySituation,
		Author:         b.Author,
		Pubdate:        b.Pubdate,
		Language:       lang,
		CurrentTime:    now.Format(CurrentTimeLayout),
		Forecasts:      entries,
	}
}
