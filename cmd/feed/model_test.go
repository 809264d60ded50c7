package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/sumwatshade/macauwx/cmd/report"
)

func TestBulletin_DocumentContext(t *testing.T) {
	b := Bulletin{
		Author:         "SMG",
		Pubdate:        "p",
		Language:       "Portuguese",
		TodaySituation: "s",
		Forecasts: []Forecast{
			{ValidFor: "d1", Description: "x", Tide: NilTide},
			{ValidFor: "d2", Description: "y", Tide: "High 05:12"},
		},
	}
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	dc := b.DocumentContext(report.Portuguese, "Sem dados", now)

	assert.Equal(t, report.DocumentContext{
		TodaySituation: "s",
		Author:         "SMG",
		Pubdate:        "p",
		Language:       report.Portuguese,
		CurrentTime:    "2024-01-02 03:04:05",
		Forecasts: []report.ForecastEntry{
			{Date: "d1", Tide: "Sem dados", Description: "x"},
			{Date: "d2", Tide: "High 05:12", Description: "y"},
		},
	}, dc)
}

func TestBulletin_DocumentContext_NoForecasts(t *testing.T) {
	dc := Bulletin{}.DocumentContext(report.English, "No data", time.Now())
	assert.NotNil(t, dc.Forecasts)
	assert.Empty(t, dc.Forecasts)
}
