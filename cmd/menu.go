package cmd

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"time"

	"delivery-console/internal/domain"
	"delivery-console/internal/listview"
	"delivery-console/internal/service"

	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "List the menu with search, category filter and sorting",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		search, _ := flags.GetString("search")
		sortRaw, _ := flags.GetString("sort")
		category, _ := flags.GetInt("category")
		interactive, _ := flags.GetBool("interactive")

		order, err := listview.ParseSortOrder(sortRaw)
		if err != nil {
			return err
		}
		var categoryID *int
		if category > 0 {
			categoryID = &category
		}

		c, svc, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		if _, err := svc.Menu.Load(cmd.Context(), nil); err != nil {
			return err
		}
		query := listview.Query{Search: search, CategoryID: categoryID, Sort: order}
		out := cmd.OutOrStdout()
		if !interactive {
			printMenu(out, svc.Menu.View(query))
			return nil
		}
		return searchLoop(cmd.InOrStdin(), out, svc.Menu, query, cfg.SearchDebounce)
	},
}

func init() {
	menuCmd.Flags().String("search", "", "case-insensitive name or description search")
	menuCmd.Flags().String("sort", "name", "name, price_asc or price_desc")
	menuCmd.Flags().Int("category", 0, "category id")
	menuCmd.Flags().BoolP("interactive", "i", false, "read search terms from stdin")
}

// searchLoop re-renders the menu for each line read, once typing has paused
// for the search debounce.
func searchLoop(in io.Reader, out io.Writer, menu *service.MenuService, query listview.Query, wait time.Duration) error {
	var mu sync.Mutex
	debouncer := listview.NewDebouncer(wait, func(term string) {
		mu.Lock()
		defer mu.Unlock()
		q := query
		q.Search = term
		printMenu(out, menu.View(q))
	})
	defer debouncer.Stop()

	printMenu(out, menu.View(query))
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		debouncer.Trigger(scanner.Text())
	}
	return scanner.Err()
}

func printMenu(w io.Writer, items []domain.MenuItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("Нічого не знайдено"))
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "%4d  %-32s %10s\n", item.ID, item.Name, domain.FormatMoney(item.Price))
	}
}
