package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/qrkeeper/internal/analytics"
	"github.com/dmitrijs2005/qrkeeper/internal/models"
)

// Scan records a decoded payload as a scanned event, enforcing the free-scan
// quota for non-premium users. The payload normally arrives from the camera
// collaborator; in the shell it is passed as arguments.
func (a *App) Scan(ctx context.Context, args []string) {
	content := strings.Join(args, " ")
	if content == "" {
		fmt.Fprintln(a.out, "usage: scan <payload>")
		return
	}

	isEntitled := a.entitlements.IsEntitled(ctx)

	if !a.quota.CanPerform(isEntitled) {
		fmt.Fprintln(a.out, "Free scan limit reached. Activate premium to continue scanning.")
		a.tracker.Track(ctx, analytics.EventScanBlocked, "used", a.quota.Used())
		return
	}

	kind := models.DetectKind(content)
	entry := a.history.RecordScanned(content, kind)

	if !isEntitled {
		if justReached := a.quota.RecordUsage(); justReached {
			a.tracker.Track(ctx, analytics.EventScanLimitReached, "ceiling", a.quota.Used())
		} else if a.quota.Remaining() == 1 {
			fmt.Fprintln(a.out, "Heads up: 1 free scan left.")
		}
	}

	a.tracker.Track(ctx, analytics.EventScanSuccess,
		"type", string(kind),
		"is_premium", isEntitled,
		"remaining", a.quota.Remaining(),
	)

	fmt.Fprintf(a.out, "Scanned: %s (%s)\n", entry.Title, entry.Kind)
}
