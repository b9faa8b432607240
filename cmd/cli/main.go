package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/celestiaorg/jobtracker/cmd/cli/commands"
	"github.com/celestiaorg/jobtracker/internal/logger"
)

func main() {
	// A missing .env file is fine, the environment may already be set
	_ = godotenv.Load()
	logger.InitializeAndConfigure()
	// stdout carries command output
	logger.SetOutput(os.Stderr)

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
