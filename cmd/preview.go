package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/sumwatshade/macauwx/cmd/preview"
	"github.com/sumwatshade/macauwx/cmd/report"
	"github.com/sumwatshade/macauwx/cmd/templates"
	"go.uber.org/zap"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the rendered forecast in the terminal",
	Long: `Opens an interactive viewer showing the rendered markdown. Switch between
languages with tab / shift+tab and reload with r.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := loadSettings()
		cat, err := templates.LoadCatalog(s.Catalog)
		if err != nil {
			return err
		}
		// Logging would draw over the UI.
		gen, err := newGenerator(s, zap.NewNop())
		if err != nil {
			return err
		}
		first, err := planRun(cat, s)
		if err != nil {
			return err
		}

		langs := make([]report.Language, 0, len(cat.Languages))
		for _, p := range cat.Languages {
			langs = append(langs, p.Code)
		}

		load := func(ctx context.Context, lang report.Language) (string, error) {
			if lang == first.Language {
				return gen.Generate(ctx, first)
			}
			// --template only applies to the initial language
			ls := s
			ls.Language = lang.String()
			ls.Template = ""
			p, err := planRun(cat, ls)
			if err != nil {
				return "", err
			}
			return gen.Generate(ctx, p)
		}

		p := tea.NewProgram(preview.New(load, langs, first.Language), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
