package cmd

import (
	"fmt"
	"io"
	"strconv"

	"delivery-console/internal/apiclient"
	"delivery-console/internal/domain"
	"delivery-console/internal/service"

	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart [add <menu-item-id> | inc <line-id> | dec <line-id> | rm <line-id> | clear]",
	Short: "Show or change the storefront cart",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, svc, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		if _, err := svc.Cart.Fetch(ctx); err != nil {
			return err
		}
		if len(args) == 0 {
			printCart(out, svc.Cart)
			return nil
		}

		var id int
		if len(args) == 2 {
			if id, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid id %q", args[1])
			}
		}
		switch args[0] {
		case "add":
			if _, err := svc.Menu.Load(ctx, nil); err != nil {
				return err
			}
			item, ok := svc.Menu.Find(id)
			if !ok {
				return fmt.Errorf("menu item %d: %w", id, apiclient.ErrNotFound)
			}
			err = svc.Cart.Add(ctx, item)
			if err == nil {
				_, err = svc.Cart.Fetch(ctx)
			}
		case "inc":
			err = svc.Cart.Increment(ctx, id)
		case "dec":
			err = svc.Cart.Decrement(ctx, id)
		case "rm":
			err = svc.Cart.Remove(ctx, id)
		case "clear":
			err = svc.Cart.Clear(ctx)
		default:
			return fmt.Errorf("unknown cart action %q", args[0])
		}
		printToast(out, c.Notify)
		if err != nil {
			return err
		}
		printCart(out, svc.Cart)
		return nil
	},
}

func printCart(w io.Writer, cart *service.CartService) {
	lines := cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("Кошик порожній"))
		return
	}
	for _, line := range lines {
		fmt.Fprintf(w, "%4d  %-28s x%-3d %10s\n", line.ID, line.MenuItem.Name, line.Quantity, domain.FormatMoney(line.LineTotal()))
		if line.Bulk() {
			fmt.Fprintln(w, mutedStyle.Render("      Чудовий вибір!"))
		}
	}
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Разом:"), domain.FormatMoney(cart.Total()))
}
