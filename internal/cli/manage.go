package cli

import (
	"context"
	"fmt"
)

// Delete removes one history entry or saved code by id.
//
// Usage: delete <history|code> <id>
func (a *App) Delete(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "usage: delete <history|code> <id>")
		return
	}

	switch args[0] {
	case "history":
		a.history.DeleteByID(args[1])
		fmt.Fprintln(a.out, "Deleted from history.")
	case "code":
		a.catalog.Delete(args[1])
		fmt.Fprintln(a.out, "Deleted from saved codes.")
	default:
		fmt.Fprintf(a.out, "Unknown target: %s\n", args[0])
	}
}

// Clear wipes the history ledger or the saved-codes catalog.
//
// Usage: clear <history|codes>
func (a *App) Clear(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: clear <history|codes>")
		return
	}

	switch args[0] {
	case "history":
		a.history.ClearAll()
		fmt.Fprintln(a.out, "History cleared.")
	case "codes":
		a.catalog.ClearAll()
		fmt.Fprintln(a.out, "Saved codes cleared.")
	default:
		fmt.Fprintf(a.out, "Unknown target: %s\n", args[0])
	}
}
