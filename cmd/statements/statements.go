// Package statements handles the statement-parsing command
package statements

import (
	"github.com/spf13/cobra"

	"github.com/mkpurohitt/bank-statement-audit/cmd/common"
	"github.com/mkpurohitt/bank-statement-audit/cmd/root"
	"github.com/mkpurohitt/bank-statement-audit/internal/report"
)

// Cmd represents the statements command
var Cmd = &cobra.Command{
	Use:   "statements",
	Short: "Parse bank-statement PDFs into a combined transactions CSV",
	Long: `Parse one PDF or a directory of PDFs. Each statement is routed to its
bank's parser; the combined transactions are sorted by date and written as
CSV.`,
	Run: statementsFunc,
}

func statementsFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	if root.SharedFlags.Input == "" {
		logger.Error("no input file or directory given, use --input")
		return
	}
	output := root.SharedFlags.Output
	if output == "" {
		output = "transactions.csv"
	}

	files, err := common.CollectFiles(root.SharedFlags.Input, ".pdf")
	if err != nil {
		logger.WithError(err).Error("failed to collect statement files")
		return
	}
	if len(files) == 0 {
		logger.Error("no PDF files found in input")
		return
	}

	transactions := common.ProcessStatements(files, logger)
	if len(transactions) == 0 {
		logger.Warn("no transactions were extracted from any statement")
	}
	if err := report.WriteTransactions(output, transactions); err != nil {
		logger.WithError(err).Error("failed to write transactions CSV")
		return
	}
	root.Log.Info("Statement parsing completed successfully!")
}
