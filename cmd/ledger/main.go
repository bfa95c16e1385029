package main

import (
	"os"

	"github.com/gabrielrealm08/finance-tracker-app/cmd/ledger/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
