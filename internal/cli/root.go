// Package cli implements rasidctl, the offline companion to the receipt API.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aakb/rasid-api/pkg/gujarati"
	"github.com/aakb/rasid-api/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	overridesPath string
	namesPath     string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "rasidctl",
	Short: "Gujarati donation receipt tools",
	Long: `rasidctl formats numbers, amounts and names the way they appear on
donation receipts, and renders receipt images without a running server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&overridesPath, "overrides", "", "TOML file of amount phrase overrides")
	rootCmd.PersistentFlags().StringVar(&namesPath, "names", "", "TOML file of name transliterations")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log to stderr")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run executes args against the command tree, writing to out. Used by tests.
func run(out io.Writer, args ...string) error {
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := logger.New("development")
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// overrides returns the amount phrase tables, built-in unless --overrides
func overrides() (gujarati.Overrides, error) {
	if overridesPath == "" {
		return gujarati.DefaultOverrideSet(), nil
	}
	f, err := os.Open(overridesPath)
	if err != nil {
		return gujarati.Overrides{}, err
	}
	defer f.Close()
	return gujarati.LoadOverrides(f)
}

// transliterator returns the name transliterator, extended by --names
func transliterator() (*gujarati.Transliterator, error) {
	names := gujarati.DefaultNames()
	if namesPath != "" {
		f, err := os.Open(namesPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if names, err = gujarati.LoadNames(f); err != nil {
			return nil, err
		}
	}
	return gujarati.NewTransliterator(names, gujarati.PhoneticRules{}), nil
}

func parseLanguage(s string) (gujarati.Language, error) {
	lang, ok := gujarati.ParseLanguage(s)
	if !ok {
		return lang, fmt.Errorf("unknown language %q (use en or gu)", s)
	}
	return lang, nil
}
