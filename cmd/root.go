package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/sumwatshade/macauwx/cmd/pick"
	"github.com/sumwatshade/macauwx/cmd/templates"
	"go.uber.org/zap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "macauwx",
	Short: "Convert the Macau weather forecast feed to markdown",
	Long: `Fetches the SMG weather forecast XML in Chinese, Portuguese or English
and renders it as markdown using a customizable template.`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.macauwx.yaml)")
	pf.StringP("language", "L", "", "language to use (zh, pt, en); overrides URL detection")
	pf.StringP("url", "u", "", "URL to fetch XML data from (default is the Chinese feed)")
	pf.StringP("template", "t", "", "template file to use from the templates dir (default depends on language)")
	pf.String("templates-dir", defaultTemplatesDir, "directory holding template files")
	pf.String("catalog", "", "YAML language catalog overriding the builtin one")
	pf.Bool("strict", false, "fail when a template placeholder has no value")
	pf.Duration("timeout", 0, "HTTP timeout for the feed request (default 10s)")
	pf.StringP("output", "o", "", "write markdown to this file instead of stdout")
	pf.BoolP("verbose", "v", false, "debug logging")
	bindFlags(rootCmd)

	rootCmd.Flags().BoolP("list-templates", "l", false, "list available templates")
	rootCmd.Flags().BoolP("interactive", "i", false, "choose language and template interactively")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s := loadSettings()

	logger, err := newLogger(s.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat, err := templates.LoadCatalog(s.Catalog)
	if err != nil {
		logger.Error("failed to load language catalog", zap.Error(err))
		return err
	}

	gen, err := newGenerator(s, logger)
	if err != nil {
		return err
	}

	if list, _ := cmd.Flags().GetBool("list-templates"); list {
		return listTemplates(gen.store, cmd.OutOrStdout())
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		names, err := gen.store.List()
		if err != nil {
			return err
		}
		choice := pick.Choice{Language: cat.Default()}
		if err := pick.Run(cat.Languages, names, &choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		s.Language = choice.Language.String()
		s.URL = ""
		if choice.Template != "" {
			s.Template = choice.Template
		}
	}

	p, err := planRun(cat, s)
	if err != nil {
		logger.Error("invalid selection", zap.Error(err))
		return err
	}

	markdown, err := gen.Generate(context.Background(), p)
	if err != nil {
		logger.Error("failed to generate markdown", zap.Error(err))
		return err
	}
	return writeOutput(s.Output, markdown, cmd.OutOrStdout())
}
