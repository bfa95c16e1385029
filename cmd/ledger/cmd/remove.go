package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a transaction permanently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker := newTracker()
		tracker.Load(cmd.Context())
		if err := trackerErr(tracker); err != nil {
			return err
		}

		if err := tracker.Remove(cmd.Context(), args[0]); err != nil {
			return err
		}
		if err := trackerErr(tracker); err != nil {
			return err
		}

		// A declined confirmation leaves the record in the cache.
		for _, item := range tracker.Transactions() {
			if item.ID == args[0] {
				fmt.Println("Aborted.")
				return nil
			}
		}

		fmt.Printf("Deleted transaction %s\n", args[0])
		return nil
	},
}
