package report

import "strings"

func cutMarker(s string) (string, string, bool) {
	return strings.Cut(s, ItemMarker)
}

func trimAll(s string) string {
	return strings.TrimSpace(s)
}
