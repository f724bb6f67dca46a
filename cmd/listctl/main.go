package main

import (
	"os"

	"github.com/orendahq/cusprod-backend/cmd/listctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
