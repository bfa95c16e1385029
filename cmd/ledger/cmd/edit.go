package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	editType     string
	editAmount   string
	editCategory string
	editNote     string
	editDate     string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker := newTracker()
		tracker.Load(cmd.Context())
		if err := trackerErr(tracker); err != nil {
			return err
		}

		if !tracker.StartEdit(args[0]) {
			return fmt.Errorf("transaction %s not found", args[0])
		}

		// Only flags the user set override the loaded record.
		form := tracker.Form()
		if cmd.Flags().Changed("type") {
			form.Type = editType
		}
		if cmd.Flags().Changed("amount") {
			form.Amount = editAmount
		}
		if cmd.Flags().Changed("category") {
			form.Category = editCategory
		}
		if cmd.Flags().Changed("note") {
			form.Note = editNote
		}
		if cmd.Flags().Changed("date") {
			form.Date = editDate
		}
		tracker.SetForm(form)

		if err := tracker.Submit(cmd.Context()); err != nil {
			return err
		}

		fmt.Printf("Updated transaction %s\n", args[0])
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editType, "type", "", "transaction type (income or expense)")
	editCmd.Flags().StringVar(&editAmount, "amount", "", "amount, must be greater than 0")
	editCmd.Flags().StringVar(&editCategory, "category", "", "category label")
	editCmd.Flags().StringVar(&editNote, "note", "", "note")
	editCmd.Flags().StringVar(&editDate, "date", "", "transaction date (YYYY-MM-DD)")
}
