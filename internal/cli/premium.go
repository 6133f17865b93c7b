package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/qrkeeper/internal/analytics"
)

// Premium activates an entitlement token. On the transition to entitled the
// free-scan counter is reset.
//
// Usage: premium <token>
func (a *App) Premium(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: premium <token>")
		return
	}

	wasEntitled := a.entitlements.IsEntitled(ctx)

	if err := a.entitlements.Activate(ctx, args[0]); err != nil {
		fmt.Fprintf(a.out, "Token rejected: %v\n", err)
		return
	}

	if !wasEntitled {
		a.quota.Reset()
		a.tracker.Track(ctx, analytics.EventPremiumActivated)
	}
	fmt.Fprintln(a.out, "Premium activated. Scanning is now unlimited.")
}

// Status prints the entitlement state and the quota counters.
func (a *App) Status(ctx context.Context) {
	if a.entitlements.IsEntitled(ctx) {
		fmt.Fprintln(a.out, "Premium: active")
		return
	}
	fmt.Fprintln(a.out, "Premium: inactive")
	fmt.Fprintf(a.out, "Free scans used: %d, remaining: %d\n", a.quota.Used(), a.quota.Remaining())
	if a.quota.LimitReached() {
		fmt.Fprintln(a.out, "Free scan limit reached.")
	}
}
