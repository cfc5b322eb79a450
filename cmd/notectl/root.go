package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"noteboard/internal/client/api"
	"noteboard/internal/client/state"
)

var serverURL string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "notectl",
	Short: "Terminal client for the noteboard API",
	Long: `notectl talks to a running noteboard server: list, search, create,
update and delete notes, and manage categories.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultServer := os.Getenv("NOTEBOARD_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:3000"
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "Base URL of the noteboard server")
}

func apiClient() *api.Client {
	return api.NewClient(serverURL)
}

func controller() *state.Controller {
	return state.NewController(apiClient())
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
