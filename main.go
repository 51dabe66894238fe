package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mkpurohitt/bank-statement-audit/cmd/audit"
	"github.com/mkpurohitt/bank-statement-audit/cmd/clients"
	"github.com/mkpurohitt/bank-statement-audit/cmd/root"
	"github.com/mkpurohitt/bank-statement-audit/cmd/statements"
)

func init() {
	// Load environment variables silently first, then fix the global log
	// level before any command logging happens.
	loadEnvSilently()
	logrus.SetLevel(configureLogLevel())

	root.Init()
	root.Cmd.AddCommand(statements.Cmd)
	root.Cmd.AddCommand(clients.Cmd)
	root.Cmd.AddCommand(audit.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func configureLogLevel() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
