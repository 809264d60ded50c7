package report

import "strings"

// ItemMarker separates the main template from the forecast item template.
const ItemMarker = "<!-- FORECAST_ITEM -->"

// TemplateDocument is a parsed template file. Item is only meaningful when
// HasItem is set.
type TemplateDocument struct {
	Main    string
	Item    string
	HasItem bool
}

// ParseTemplate splits raw template text on the first ItemMarker. Text before
// the marker (trailing whitespace trimmed) is the main template and text after
// it (trimmed) is the item template. Without a marker the whole text is the
// main template.
func ParseTemplate(raw string) (TemplateDocument, error) {
	if strings.TrimSpace(raw) == "" {
		return TemplateDocument{}, NewTemplateFormatError("", ErrMsgTemplateEmpty)
	}
	main, item, found := strings.Cut(raw, ItemMarker)
	if !found {
		return TemplateDocument{Main: raw}, nil
	}
	return TemplateDocument{
		Main:    strings.TrimRight(main, whitespace),
		Item:    strings.TrimSpace(item),
		HasItem: true,
	}, nil
}

// String reassembles the document in the file layout ParseTemplate reads.
func (d TemplateDocument) String() string {
	if !d.HasItem {
		return d.Main
	}
	return d.Main + "\n" + ItemMarker + "\n" + d.Item
}

const whitespace = " \t\r\n\v\f"
