package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	if a.entitlements.IsEntitled(ctx) {
		return "(premium)"
	}
	return fmt.Sprintf("(%d free scans left)", a.quota.Remaining())
}

// Root runs the command loop until EOF or an exit command.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to qrkeeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "qrk %s> ", a.getStatus(ctx))
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: scan, create, history, codes, show, delete, clear, premium, status, exit")

		case "scan":
			a.Scan(ctx, args)

		case "create":
			a.Create(ctx, args)

		case "history":
			a.History(ctx, args)

		case "codes":
			a.Codes(ctx, args)

		case "show":
			a.Show(ctx, args)

		case "delete":
			a.Delete(ctx, args)

		case "clear":
			a.Clear(ctx, args)

		case "premium":
			a.Premium(ctx, args)

		case "status":
			a.Status(ctx)

		case "exit", "quit":
			return

		default:
			fmt.Fprintf(a.out, "Unknown command: %s\n", cmd)
		}
	}
}
