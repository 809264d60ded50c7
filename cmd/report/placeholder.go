package report

import "regexp"

// placeholderPattern matches {name} tokens. Names are case-sensitive
// alphanumeric-plus-underscore.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Substitute replaces every {name} in tmpl with values[name] in a single
// left-to-right pass. Substituted values are never scanned again.
//
// Unmapped placeholders are left as the literal {name} token, unless strict is
// set, in which case a MissingPlaceholderError listing each missing name is
// returned together with an empty string.
func Substitute(tmpl string, values map[string]string, strict bool) (string, error) {
	var missing []string
	seen := make(map[string]bool)

	out := placeholderPattern.ReplaceAllStringFunc(tmpl, func(token string) string {
		name := token[1 : len(token)-1]
		if v, ok := values[name]; ok {
			return v
		}
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
		return token
	})

	if strict && len(missing) > 0 {
		return "", NewMissingPlaceholderError(missing)
	}
	return out, nil
}

// Placeholders lists the distinct placeholder names in tmpl in order of first
// appearance.
func Placeholders(tmpl string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(tmpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// hasPlaceholders reports whether tmpl contains at least one {name} token.
func hasPlaceholders(tmpl string) bool {
	return placeholderPattern.MatchString(tmpl)
}
