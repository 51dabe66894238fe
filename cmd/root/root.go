// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mkpurohitt/bank-statement-audit/internal/brokerlist"
	"github.com/mkpurohitt/bank-statement-audit/internal/clientlist"
	"github.com/mkpurohitt/bank-statement-audit/internal/config"
	"github.com/mkpurohitt/bank-statement-audit/internal/logging"
	"github.com/mkpurohitt/bank-statement-audit/internal/matching"
	"github.com/mkpurohitt/bank-statement-audit/internal/report"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bank-statement-audit",
		Short: "Parse Indian bank-statement PDFs and audit the transactions.",
		Long: `bank-statement-audit extracts transactions from Indian bank-statement
PDFs across the supported bank formats, consolidates broker-house client
lists, and cross-references the two to produce flagged-transaction reports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bank-statement-audit!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			adapter := logging.NewLogrusAdapterFromLogger(Log)
			logging.SetDefaultLogger(adapter)
			clientlist.SetLogger(adapter)
			brokerlist.SetLogger(adapter)
			matching.SetLogger(adapter)
			report.SetLogger(adapter)
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
}

// GetLogger returns the configured logger behind the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
