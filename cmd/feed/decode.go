package feed

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// element names read from the feed
const (
	elemAuthor         = "SysAuthor"
	elemPubdate        = "SysPubdate"
	elemLanguage       = "SysLanguage"
	elemTodaySituation = "TodaySituation"
	elemForecast       = "WeatherForecast"
	elemValidFor       = "ValidFor"
	elemDescription    = "WeatherDescription"
	elemTide           = "AstronomicalTide"
)

// Decode reads a forecast XML document. Elements are matched by local name at
// any depth; the first occurrence of each document-level element wins.
// Missing or empty elements get the Default* values.
func Decode(r io.Reader) (Bulletin, error) {
	dec := xml.NewDecoder(r)

	var (
		b       Bulletin
		text    strings.Builder
		current *Forecast
		seen    = make(map[string]bool)
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Bulletin{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			text.Reset()
			if t.Name.Local == elemForecast {
				current = &Forecast{}
			}
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			value := strings.TrimSpace(text.String())
			text.Reset()

			name := t.Name.Local
			if current != nil {
				switch name {
				case elemValidFor:
					current.ValidFor = value
				case elemDescription:
					current.Description = value
				case elemTide:
					current.Tide = value
				case elemForecast:
					b.Forecasts = append(b.Forecasts, current.withDefaults())
					current = nil
				}
				continue
			}

			if seen[name] {
				continue
			}
			switch name {
			case elemAuthor:
				b.Author = value
			case elemPubdate:
				b.Pubdate = value
			case elemLanguage:
				b.Language = value
			case elemTodaySituation:
				b.TodaySituation = value
			default:
				continue
			}
			seen[name] = true
		}
	}

	if b.TodaySituation == "" {
		b.TodaySituation = DefaultTodaySituation
	}
	return b, nil
}

func (f *Forecast) withDefaults() Forecast {
	out := *f
	if out.ValidFor == "" {
		out.ValidFor = DefaultDate
	}
	if out.Description == "" {
		out.Description = DefaultDescription
	}
	if out.Tide == "" {
		out.Tide = NilTide
	}
	return out
}
