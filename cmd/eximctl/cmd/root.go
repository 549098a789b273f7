// Package cmd implements the eximctl command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eximdesk/eximdesk-api/internal/client"
)

var (
	serverURL   string
	sessionPath string
)

var rootCmd = &cobra.Command{
	Use:   "eximctl",
	Short: "Command line client for the EximDesk invoice service",
	Long: `eximctl talks to the EximDesk API to manage export invoices,
commercial invoices and packing lists from the terminal.

Sign in first with "eximctl login", then use the invoice subcommands.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "base URL of the API server")
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session", "", "path to the session file (default ~/.eximdesk/session.json)")
}

// newClient builds an API client from the global flags.
func newClient() (*client.Client, error) {
	path := sessionPath
	if path == "" {
		var err error
		path, err = client.DefaultSessionPath()
		if err != nil {
			return nil, err
		}
	}
	store := client.NewFileSessionStore(path)
	return client.New(serverURL, store), nil
}

func printErr(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
