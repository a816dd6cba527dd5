package main

import (
	"encoding/json"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

// Logger интерфейс логгера, общий для сервисов, которые собирает CLI
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

var (
	fixturePath string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "schedulectl",
	Short: "Offline evaluation of the scheduling engine",
	Long: `schedulectl evaluates the scheduling engine against a YAML fixture with
captured marketplace responses, manual blocks and a package config.

The fixture goes through the same config validation, snapshot assembly and
engine as the HTTP API, so the output matches what a client would have seen
at the fixture's "now".

Examples:
  schedulectl slots --fixture report.yaml --date 2026-10-20
  schedulectl dates --fixture report.yaml --days 14
  schedulectl completion --fixture report.yaml --date 2026-10-20 --time 10:00 --include-buffer
  schedulectl min-date --fixture report.yaml --viewer-tz Europe/Moscow`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fixturePath, "fixture", "f", "", "Path to the YAML fixture")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level written to stderr (debug, info, warn, error)")
	_ = rootCmd.MarkPersistentFlagRequired("fixture")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger создает логгер в stderr, чтобы stdout оставался чистым JSON
func newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	return logger.NewWithWriter(cmd.ErrOrStderr(), logLevel)
}

// printJSON печатает результат в формате ответа HTTP API
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
