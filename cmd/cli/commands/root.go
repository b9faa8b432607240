// Package commands implements the jobtracker command line interface
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/celestiaorg/jobtracker/config"
	"github.com/celestiaorg/jobtracker/internal/constants"
	"github.com/celestiaorg/jobtracker/internal/logger"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/client"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/routes"
	"github.com/celestiaorg/jobtracker/pkg/tracker"
)

// flag names
const (
	flagServerAddress = "server-address"
)

var (
	// jobCache is the session cache every command goes through
	jobCache *tracker.Cache
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
	// newClient builds the API client for the resolved address. Tests replace it.
	newClient = func(baseURL string) (client.Client, error) {
		opts := client.DefaultOptions()
		opts.BaseURL = baseURL
		return client.NewClient(opts)
	}
)

// NewRootCmd builds the command tree. Each call returns fresh commands and flags.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jobtracker",
		Short:         "Job tracker CLI - track job applications through the jobs API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Flag > env > default
			if !cmd.Flags().Changed(flagServerAddress) {
				if envAddr := config.GetEnv(constants.EnvServerAddress, ""); envAddr != "" {
					serverAddress = envAddr
				}
			}
			if serverAddress == "" {
				return fmt.Errorf("server address cannot be empty")
			}
			logger.Debugf("jobs API address: %s", serverAddress)

			apiClient, err := newClient(serverAddress)
			if err != nil {
				return err
			}
			jobCache = tracker.NewCache(apiClient)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", routes.DefaultBaseURL,
		fmt.Sprintf("Address of the jobs API server (env: %s)", constants.EnvServerAddress))

	rootCmd.AddCommand(newJobsCmd())
	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}
