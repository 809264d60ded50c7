package pick

import (
	"github.com/charmbracelet/huh"
	"github.com/sumwatshade/macauwx/cmd/report"
	"github.com/sumwatshade/macauwx/cmd/templates"
)

// LanguageDefault is the template option meaning "the language's default".
const LanguageDefault = ""

// Choice is the result of the picker.
type Choice struct {
	Language report.Language
	Template string
}

// NewForm builds the language and template picker. Selected values are
// written to choice when the form completes.
func NewForm(profiles []templates.Profile, templateNames []string, choice *Choice) *huh.Form {
	lang := (*string)(&choice.Language)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Language").Options(languageOptions(profiles)...).Value(lang),
			huh.NewSelect[string]().Title("Template").Options(templateOptions(templateNames)...).Value(&choice.Template),
		),
	)
}

// Run shows the picker and blocks until it is completed or aborted.
func Run(profiles []templates.Profile, templateNames []string, choice *Choice) error {
	return NewForm(profiles, templateNames, choice).Run()
}

func languageOptions(profiles []templates.Profile) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(profiles))
	for _, p := range profiles {
		opts = append(opts, huh.NewOption(p.Name, p.Code.String()))
	}
	return opts
}

func templateOptions(names []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(names)+1)
	opts = append(opts, huh.NewOption("(language default)", LanguageDefault))
	for _, n := range names {
		opts = append(opts, huh.NewOption(n, n))
	}
	return opts
}
