// Package commands wires the listctl CLI: interactive list management for
// customers, products, and orders against a running CusProd API.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/orendahq/cusprod-backend/internal/apiclient"
)

var (
	apiBase string
	client  *apiclient.Client

	search   string
	minValue float64
	page     int
	pageSize int
)

func Execute() error {
	root := &cobra.Command{
		Use:   "listctl",
		Short: "List management CLI for the CusProd API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = apiclient.New(apiBase)
		},
	}

	root.PersistentFlags().StringVar(&apiBase, "api", "http://localhost:8080/api/v1", "API base URL")

	root.AddCommand(ordersCmd(), customersCmd(), productsCmd())
	return root.Execute()
}

// addListFlags attaches the shared filter/pagination flags to a list command.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive substring filter")
	cmd.Flags().Float64Var(&minValue, "min", 0, "minimum value filter (quantity or price)")
	cmd.Flags().IntVar(&page, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "rows per page (10, 25 or 50)")
}
