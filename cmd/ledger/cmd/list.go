package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all transactions with running totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker := newTracker()
		tracker.Load(cmd.Context())
		if err := trackerErr(tracker); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tCATEGORY\tNOTE\tID")
		for _, item := range tracker.Transactions() {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\t%s\n",
				item.Date.Format("2006-01-02"), item.Type, item.Amount, item.Category, item.Note, item.ID)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		totals := tracker.Totals()
		fmt.Printf("\nIncome: %.2f  Expense: %.2f  Balance: %.2f\n",
			totals.Income, totals.Expense, totals.Balance)
		return nil
	},
}
