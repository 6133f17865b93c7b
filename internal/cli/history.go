package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/qrkeeper/internal/services"
)

// History prints the activity ledger grouped by day.
//
// Usage: history [all|scanned|created] [newest|oldest]
func (a *App) History(ctx context.Context, args []string) {
	filter := services.FilterAll
	order := services.NewestFirst

	for _, arg := range args {
		switch arg {
		case "all":
			filter = services.FilterAll
		case "scanned":
			filter = services.FilterScanned
		case "created":
			filter = services.FilterCreated
		case "newest":
			order = services.NewestFirst
		case "oldest":
			order = services.OldestFirst
		default:
			fmt.Fprintf(a.out, "Unknown argument: %s\n", arg)
			return
		}
	}

	sections := a.history.GroupedByDay(filter, order)
	if len(sections) == 0 {
		fmt.Fprintln(a.out, "History is empty.")
		return
	}

	for _, section := range sections {
		fmt.Fprintf(a.out, "%s\n", section.Label)
		for _, e := range section.Entries {
			fmt.Fprintf(a.out, "  [%s] %s  %s  (%s)  %s\n",
				e.Action, e.Date.Format("15:04"), e.Title, e.Kind, e.ID)
		}
	}
}
