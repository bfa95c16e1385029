// Package cmd provides CLI commands for the ledger client.
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gabrielrealm08/finance-tracker-app/pkg/ledgerclient"
)

var apiURL string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Record and review income and expense transactions",
	Long: `ledger is a CLI client for the Finance Tracker API.

It supports:
- Listing transactions with income/expense/balance totals
- Adding income and expense entries
- Editing and removing existing entries

Example:
  ledger add --type expense --amount 12.50 --category Food --note lunch
  ledger list`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (default $API_URL or http://localhost:5000)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
}

func baseURL() string {
	if apiURL != "" {
		return apiURL
	}
	if env := os.Getenv("API_URL"); env != "" {
		return env
	}
	return "http://localhost:5000"
}

// newTracker builds the client state over the configured API, with delete
// confirmations answered on stdin.
func newTracker() *ledgerclient.Tracker {
	client := ledgerclient.NewClient(baseURL())
	return ledgerclient.NewTracker(client, stdinConfirmer{})
}

// stdinConfirmer blocks on a y/N prompt.
type stdinConfirmer struct{}

func (stdinConfirmer) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// trackerErr converts a tracker banner message into a command error.
func trackerErr(tracker *ledgerclient.Tracker) error {
	if msg := tracker.ErrorMessage(); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return nil
}
