// Package audit handles the full-pipeline command
package audit

import (
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mkpurohitt/bank-statement-audit/cmd/common"
	"github.com/mkpurohitt/bank-statement-audit/cmd/root"
	"github.com/mkpurohitt/bank-statement-audit/internal/brokerlist"
	"github.com/mkpurohitt/bank-statement-audit/internal/config"
	"github.com/mkpurohitt/bank-statement-audit/internal/matching"
	"github.com/mkpurohitt/bank-statement-audit/internal/report"
)

var (
	statementsPath string
	clientsPath    string
)

// Cmd represents the audit command
var Cmd = &cobra.Command{
	Use:   "audit",
	Short: "Run the full pipeline: statements + client lists -> audit reports",
	Long: `Parse bank-statement PDFs, consolidate client lists, load the broker
list, and cross-reference everything into three CSV reports: client-matched
transactions, unmatched high-value transactions, and keyword/broker-flagged
transactions.`,
	Run: auditFunc,
}

func init() {
	Cmd.Flags().StringVar(&statementsPath, "statements", "", "Statement PDF file or directory")
	Cmd.Flags().StringVar(&clientsPath, "clients", "", "Client list file or directory")
}

func auditFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	if statementsPath == "" || clientsPath == "" {
		logger.Error("both --statements and --clients are required")
		return
	}
	outputDir := root.SharedFlags.Output
	if outputDir == "" {
		outputDir = "."
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		logger.WithError(err).Error("failed to load configuration")
		return
	}

	statementFiles, err := common.CollectFiles(statementsPath, ".pdf")
	if err != nil {
		logger.WithError(err).Error("failed to collect statement files")
		return
	}
	transactions := common.ProcessStatements(statementFiles, logger)
	if len(transactions) == 0 {
		logger.Error("no transactions were extracted, nothing to audit")
		return
	}

	clientFiles, err := common.CollectFiles(clientsPath, ".xlsx", ".csv", ".xls")
	if err != nil {
		logger.WithError(err).Error("failed to collect client list files")
		return
	}
	clients := common.ProcessClientLists(clientFiles, logger)
	if len(clients) == 0 {
		logger.Error("no client names were extracted, nothing to audit")
		return
	}

	// The flagged report still runs without a broker list, on keywords alone.
	brokers, err := brokerlist.Load(cfg.Audit.BrokerList)
	if err != nil {
		logger.WithError(err).Warn("failed to load broker list, flagged report will cover keywords only")
	}

	analyzer := matching.New(clients, cfg.Audit.Keywords, brokers, decimal.NewFromFloat(cfg.Audit.Threshold))
	reports := analyzer.Run(transactions)

	if err := report.WriteClientReport(filepath.Join(outputDir, "client_transactions.csv"), reports.Client); err != nil {
		logger.WithError(err).Error("failed to write client transactions report")
		return
	}
	if err := report.WriteUnmatchedReport(filepath.Join(outputDir, "non_client_transactions.csv"), reports.UnmatchedHighValue); err != nil {
		logger.WithError(err).Error("failed to write non-client transactions report")
		return
	}
	if err := report.WriteFlaggedReport(filepath.Join(outputDir, "flagged_transactions.csv"), reports.Flagged); err != nil {
		logger.WithError(err).Error("failed to write flagged transactions report")
		return
	}
	root.Log.Info("Audit completed successfully!")
}
