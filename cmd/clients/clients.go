// Package clients handles the client-list consolidation command
package clients

import (
	"github.com/spf13/cobra"

	"github.com/mkpurohitt/bank-statement-audit/cmd/common"
	"github.com/mkpurohitt/bank-statement-audit/cmd/root"
	"github.com/mkpurohitt/bank-statement-audit/internal/report"
)

// Cmd represents the clients command
var Cmd = &cobra.Command{
	Use:   "clients",
	Short: "Consolidate broker-house client lists into one client-name CSV",
	Run:   clientsFunc,
}

func clientsFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	if root.SharedFlags.Input == "" {
		logger.Error("no input file or directory given, use --input")
		return
	}
	output := root.SharedFlags.Output
	if output == "" {
		output = "clients.csv"
	}

	files, err := common.CollectFiles(root.SharedFlags.Input, ".xlsx", ".csv", ".xls")
	if err != nil {
		logger.WithError(err).Error("failed to collect client list files")
		return
	}
	if len(files) == 0 {
		logger.Error("no client list files found in input")
		return
	}

	names := common.ProcessClientLists(files, logger)
	if len(names) == 0 {
		logger.Warn("no client names were extracted from any list")
	}
	if err := report.WriteClientNames(output, names); err != nil {
		logger.WithError(err).Error("failed to write client names CSV")
		return
	}
	root.Log.Info("Client list consolidation completed successfully!")
}
