package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	b, err := Decode(strings.NewReader(sampleXML))
	require.NoError(t, err)

	assert.Equal(t, "SMG", b.Author)
	assert.Equal(t, "2024-01-01 10:00", b.Pubdate)
	assert.Equal(t, "English", b.Language)
	assert.Equal(t, "A ridge of high pressure covers southern China.", b.TodaySituation)

	require.Len(t, b.Forecasts, 3)
	assert.Equal(t, Forecast{ValidFor: "2024-01-02", Description: "Sunny periods.", Tide: "High tide 05:12"}, b.Forecasts[0])
	assert.Equal(t, Forecast{ValidFor: "2024-01-03", Description: "Cloudy with {date} braces.", Tide: NilTide}, b.Forecasts[1])
	assert.Equal(t, Forecast{ValidFor: DefaultDate, Description: DefaultDescription, Tide: NilTide}, b.Forecasts[2])
}

func TestDecode_MissingSituation(t *testing.T) {
	b, err := Decode(strings.NewReader(`<Root><SysAuthor>x</SysAuthor></Root>`))
	require.NoError(t, err)
	assert.Equal(t, DefaultTodaySituation, b.TodaySituation)
	assert.Empty(t, b.Forecasts)
}

func TestDecode_FirstOccurrenceWins(t *testing.T) {
	b, err := Decode(strings.NewReader(`<Root><SysAuthor>first</SysAuthor><SysAuthor>second</SysAuthor></Root>`))
	require.NoError(t, err)
	assert.Equal(t, "first", b.Author)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`<Root><SysAuthor>x</Root>`))
	require.Error(t, err)
}
