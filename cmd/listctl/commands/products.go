package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/orendahq/cusprod-backend/internal/listview"
	"github.com/orendahq/cusprod-backend/internal/model"
)

// Products are searched by name and filtered on price, which travels as
// text; unparsable prices sort below any threshold.
var productFields = listview.Fields[model.Product]{
	SearchText: func(p model.Product) string { return p.Name },
	Numeric: func(p model.Product) float64 {
		value, err := strconv.ParseFloat(p.Price, 64)
		if err != nil {
			return 0
		}
		return value
	},
}

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage products",
	}
	cmd.AddCommand(productsListCmd())
	return cmd
}

func productsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products with search, filter and paging",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			view := listview.NewView(productFields)
			loader := listview.NewLoader(client.ListProducts)
			loader.LoadInto(ctx, view)

			if view.Phase() == listview.Failed {
				fmt.Fprintln(os.Stderr, "Error fetching products:", view.Err())
				return view.Err()
			}

			view.SetPageSize(pageSize)
			view.SetSearch(search)
			view.SetThreshold(minValue)
			view.SetPage(page)

			rows, total := view.Rows()
			if view.Empty() {
				fmt.Println("No products found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE")
			for _, p := range rows {
				fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Name, p.Price)
			}
			w.Flush()
			fmt.Printf("page %d, %d of %d matching product(s)\n", view.Params().Page, len(rows), total)
			return nil
		},
	}
	addListFlags(cmd)
	return cmd
}
