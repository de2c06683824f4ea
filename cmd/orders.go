package cmd

import (
	"fmt"
	"io"
	"strconv"

	"delivery-console/internal/domain"
	"delivery-console/internal/service"
	"delivery-console/internal/session"
	"delivery-console/internal/workflow"

	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders [set <order-id> <status> | cancel <order-id>]",
	Short: "List orders; admins can change status, customers can cancel",
	Args:  cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		statusRaw, _ := cmd.Flags().GetString("status")
		var filter *domain.OrderStatus
		if statusRaw != "" && statusRaw != "all" {
			status, err := domain.ParseOrderStatus(statusRaw)
			if err != nil {
				return err
			}
			filter = &status
		}

		c, svc, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if c.Name == session.AppStorefront {
			if len(args) == 2 && args[0] == "cancel" {
				id, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid order id %q", args[1])
				}
				err = svc.History.Cancel(ctx, id)
				printToast(out, c.Notify)
				if err != nil {
					return err
				}
			} else if _, err := svc.History.Load(ctx); err != nil {
				return err
			}
			printHistory(out, svc.History.Filtered(filter))
			return nil
		}

		if len(args) == 3 && args[0] == "set" {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[1])
			}
			status, err := domain.ParseOrderStatus(args[2])
			if err != nil {
				return err
			}
			if err := svc.Orders.UpdateStatus(ctx, id, status); err != nil {
				return err
			}
		} else if _, err := svc.Orders.Load(ctx); err != nil {
			return err
		}
		printTable(out, svc.Orders.Table(filter))
		return nil
	},
}

func init() {
	ordersCmd.Flags().String("status", "all", "status filter")
}

func printTable(w io.Writer, table service.OrderTable) {
	counts := table.Counts
	fmt.Fprintf(w, "%s  всі %d · очікують %d · готуються %d · доставляються %d · доставлено %d\n",
		headerStyle.Render("Замовлення"), counts.All, counts.Pending, counts.Preparing, counts.Delivering, counts.Delivered)
	for _, order := range table.Orders {
		fmt.Fprintf(w, "#%-5d %s  %10s  %s\n", order.ID, statusBadge(order.Status),
			domain.FormatMoney(order.TotalPrice), order.DeliveryAddress)
	}
}

func printHistory(w io.Writer, views []service.OrderView) {
	if len(views) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("Замовлень немає"))
		return
	}
	for _, view := range views {
		fmt.Fprintf(w, "#%-5d %s  %10s\n", view.ID, statusBadge(view.Status), view.Total)
		if view.ShowProgress {
			fmt.Fprintf(w, "       %s\n", progressBar(view.Progress, 20))
		}
	}
}

var kanbanCmd = &cobra.Command{
	Use:   "kanban [move <order-id> <column>]",
	Short: "Show the order board or move a card to another column",
	Args:  cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, svc, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		ctx := cmd.Context()
		if _, err := svc.Orders.Load(ctx); err != nil {
			return err
		}
		if len(args) == 3 && args[0] == "move" {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[1])
			}
			destination := args[2]
			moved, err := svc.Orders.Drop(ctx, workflow.CardID(id), &destination)
			if err != nil {
				return err
			}
			if !moved {
				fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render("no such column: "+destination))
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderBoard(svc.Orders.Board()))
		return nil
	},
}
