package main

import (
	"io"
	"os"

	loggy "github.com/SamuelDBines/pyloggy"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "loggy",
	Short: "Styled status lines for shell scripts and CI output",
	Long: `Loggy prints leveled, styled status lines (log, ok, info, warn, err)
with optional icons and colors, selectable via named style presets.

Color and icons switch themselves off when output is piped, so the same
script stays readable in a terminal and clean in a log file. The log and
info kinds only appear with --debug or DEBUG_LOGS=1.`,
	SilenceUsage: true,
}

var (
	flagStyle   string
	flagSheet   string
	flagDebug   bool
	flagVerbose bool
	flagNoColor bool
	flagNoIcons bool
	flagQuiet   bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagStyle, "style", "s", "", "style preset or sheet entry name")
	rootCmd.PersistentFlags().StringVar(&flagSheet, "stylesheet", "", "YAML file with custom styles")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "emit the log and info kinds")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "accepted for compatibility, no effect")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "never emit color escapes")
	rootCmd.PersistentFlags().BoolVar(&flagNoIcons, "no-icons", false, "never emit icons")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress everything except err lines")
}

// loadSheet loads the style sheet named by --stylesheet, or returns a
// nil sheet (builtins only) when the flag is unset.
func loadSheet() (*loggy.StyleSheet, error) {
	if flagSheet == "" {
		return nil, nil
	}
	return loggy.LoadStyleSheet(flagSheet)
}

// buildLogger assembles the Logger shared by the emit commands from
// the persistent flags and the command's output streams.
func buildLogger(cmd *cobra.Command) (*loggy.Logger, error) {
	sheet, err := loadSheet()
	if err != nil {
		return nil, err
	}
	style := sheet.Get(flagStyle)

	var out io.Writer = cmd.OutOrStdout()
	if flagQuiet {
		out = io.Discard
	}
	return loggy.New(loggy.Options{
		Debug:        flagDebug,
		Verbose:      flagVerbose,
		DisableColor: flagNoColor,
		DisableIcons: flagNoIcons,
		Style:        &style,
		Out:          out,
		Err:          cmd.ErrOrStderr(),
	}), nil
}

func main() {
	// A .env file may carry DEBUG_LOGS; not having one is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
