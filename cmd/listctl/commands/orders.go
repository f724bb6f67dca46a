package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/orendahq/cusprod-backend/internal/listview"
	"github.com/orendahq/cusprod-backend/internal/model"
)

// Orders are searched by customer, falling back to the raw reference when
// the projection is missing.
var orderFields = listview.Fields[model.Order]{
	SearchText: func(o model.Order) string {
		if o.Customer != nil {
			return o.Customer.Name
		}
		return strconv.Itoa(o.CustomerID)
	},
	Numeric: func(o model.Order) float64 {
		return float64(o.Quantity)
	},
}

func ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage orders",
	}
	cmd.AddCommand(ordersListCmd(), ordersDeleteCmd())
	return cmd
}

func ordersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders with search, filter and paging",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			view := listview.NewView(orderFields)
			loader := listview.NewLoader(client.ListOrders)
			loader.LoadInto(ctx, view)

			if view.Phase() == listview.Failed {
				fmt.Fprintln(os.Stderr, "Error fetching orders:", view.Err())
				return view.Err()
			}

			view.SetPageSize(pageSize)
			view.SetSearch(search)
			view.SetThreshold(minValue)
			view.SetPage(page)

			rows, total := view.Rows()
			if view.Empty() {
				fmt.Println("No orders found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCUSTOMER\tPRODUCT\tQTY")
			for _, o := range rows {
				customer := strconv.Itoa(o.CustomerID)
				if o.Customer != nil {
					customer = o.Customer.Name
				}
				product := strconv.Itoa(o.ProductID)
				if o.Product != nil {
					product = fmt.Sprintf("%s (%s)", o.Product.Name, o.Product.Price)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", o.ID, customer, product, o.Quantity)
			}
			w.Flush()
			fmt.Printf("page %d, %d of %d matching order(s)\n", view.Params().Page, len(rows), total)
			return nil
		},
	}
	addListFlags(cmd)
	return cmd
}

func ordersDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an order (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			ctx := cmd.Context()

			notifier := listview.NewNotifier(6 * time.Second)
			wf := listview.NewWorkflow(
				func(ctx context.Context, id int) error {
					return client.DeleteOrder(ctx, id)
				},
				func() {
					if orders, err := client.ListOrders(ctx); err == nil {
						fmt.Printf("%d order(s) remaining\n", len(orders))
					}
				},
				notifier,
			)

			wf.OpenMenu(id)
			wf.RequestDelete()

			if !yes && !confirmPrompt(fmt.Sprintf("Are you sure you want to delete order %d?", id)) {
				wf.Cancel()
				fmt.Println("Aborted.")
				return nil
			}

			err = wf.Confirm(ctx)
			if notice := notifier.Current(); notice != nil {
				fmt.Println(notice.Text)
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func confirmPrompt(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
