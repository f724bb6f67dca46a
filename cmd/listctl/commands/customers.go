package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/orendahq/cusprod-backend/internal/listview"
	"github.com/orendahq/cusprod-backend/internal/model"
)

var customerFields = listview.Fields[model.Customer]{
	SearchText: func(c model.Customer) string { return c.Name },
}

func customersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage customers",
	}
	cmd.AddCommand(customersListCmd())
	return cmd
}

func customersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers with search and paging",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			view := listview.NewView(customerFields)
			loader := listview.NewLoader(client.ListCustomers)
			loader.LoadInto(ctx, view)

			if view.Phase() == listview.Failed {
				fmt.Fprintln(os.Stderr, "Error fetching customers:", view.Err())
				return view.Err()
			}

			view.SetPageSize(pageSize)
			view.SetSearch(search)
			view.SetPage(page)

			rows, total := view.Rows()
			if view.Empty() {
				fmt.Println("No customers found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL\tADDRESS")
			for _, c := range rows {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Phone, c.Email, c.Address)
			}
			w.Flush()
			fmt.Printf("page %d, %d of %d matching customer(s)\n", view.Params().Page, len(rows), total)
			return nil
		},
	}
	addListFlags(cmd)
	return cmd
}
