package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gabrielrealm08/finance-tracker-app/pkg/ledgerclient"
)

var (
	addType     string
	addAmount   string
	addCategory string
	addNote     string
	addDate     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new income or expense transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker := newTracker()
		tracker.SetForm(ledgerclient.Form{
			Type:     addType,
			Amount:   addAmount,
			Category: addCategory,
			Note:     addNote,
			Date:     addDate,
		})

		if err := tracker.Submit(cmd.Context()); err != nil {
			return err
		}

		created := tracker.Transactions()[0]
		fmt.Printf("Recorded %s of %.2f in %s (%s)\n", created.Type, created.Amount, created.Category, created.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addType, "type", "expense", "transaction type (income or expense)")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "amount, must be greater than 0")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category label")
	addCmd.Flags().StringVar(&addNote, "note", "", "optional note")
	addCmd.Flags().StringVar(&addDate, "date", time.Now().Format("2006-01-02"), "transaction date (YYYY-MM-DD)")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("category")
}
