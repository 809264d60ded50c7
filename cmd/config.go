package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sumwatshade/macauwx/cmd/feed"
)

// viper keys
const (
	keyLanguage     = "language"
	keyURL          = "url"
	keyTemplate     = "template"
	keyTemplatesDir = "templates_dir"
	keyCatalog      = "catalog"
	keyStrict       = "strict"
	keyTimeout      = "timeout"
	keyOutput       = "output"
	keyVerbose      = "verbose"
)

const (
	envPrefix           = "MACAUWX"
	defaultTemplatesDir = "templates"
)

// settings is the resolved configuration of one run.
type settings struct {
	Language     string
	URL          string
	Template     string
	TemplatesDir string
	Catalog      string
	Strict       bool
	Timeout      time.Duration
	Output       string
	Verbose      bool
}

func loadSettings() settings {
	return settings{
		Language:     viper.GetString(keyLanguage),
		URL:          viper.GetString(keyURL),
		Template:     viper.GetString(keyTemplate),
		TemplatesDir: viper.GetString(keyTemplatesDir),
		Catalog:      viper.GetString(keyCatalog),
		Strict:       viper.GetBool(keyStrict),
		Timeout:      viper.GetDuration(keyTimeout),
		Output:       viper.GetString(keyOutput),
		Verbose:      viper.GetBool(keyVerbose),
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".macauwx" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".macauwx")
	}

	viper.SetDefault(keyTemplatesDir, defaultTemplatesDir)
	viper.SetDefault(keyTimeout, feed.DefaultTimeout)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindFlags binds every persistent flag of cmd to the viper key of the same
// name, with dashes turned into underscores.
func bindFlags(cmd *cobra.Command) {
	for _, key := range []string{keyLanguage, keyURL, keyTemplate, keyTemplatesDir, keyCatalog, keyStrict, keyTimeout, keyOutput, keyVerbose} {
		flag := cmd.PersistentFlags().Lookup(strings.ReplaceAll(key, "_", "-"))
		cobra.CheckErr(viper.BindPFlag(key, flag))
	}
}
