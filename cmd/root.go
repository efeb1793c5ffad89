package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	level   string
	version = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flx",
	Short: "Scaffold clean-architecture Flutter features",
	Long: `flx generates layered feature scaffolding (data / domain / presentation)
for Flutter applications. Template families are selected by flx.config.json:
GetX or BLoC for state management, freezed or equatable for models.`,
	Version:      version,
	SilenceUsage: true,
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
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().StringVarP(&level, "level", "l", "warn", "log level (debug, info, warn, error)")
}

func initLogging() {
	var ll slog.Level
	if err := (&ll).UnmarshalText([]byte(level)); err != nil {
		if strings.EqualFold(level, "trace") {
			ll = slog.Level(-8)
		} else {
			ll = slog.LevelWarn
		}
	}
	l := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: ll,
	}))
	slog.SetDefault(l)
}
