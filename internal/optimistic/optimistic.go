// Package optimistic implements the update-then-revert protocol used for
// every cart and wishlist mutation that must be mirrored on the backend:
// mutate local state immediately, issue the remote call, and on failure
// apply the exact inverse mutation and surface one error notification.
package optimistic

import (
	"context"
	"fmt"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/notify"
)

// Op is a single optimistic mutation. Apply runs synchronously before the
// remote call; Revert must restore the state Apply observed. Call is
// fire-and-forget from the store's perspective: no queuing, no retry. A
// failed call triggers exactly one compensating revert.
type Op struct {
	// Label names the operation in the failure notification.
	Label string

	Apply  func()
	Revert func()
	Call   func(ctx context.Context) error
}

// Run executes the optimistic protocol. The returned error is the remote
// call's error, after local state has already been restored.
func Run(ctx context.Context, notifier notify.Notifier, op Op) error {
	if op.Apply != nil {
		op.Apply()
	}

	err := op.Call(ctx)
	if err == nil {
		return nil
	}

	if op.Revert != nil {
		op.Revert()
	}
	notify.Errorf(notifier, "%s failed: %v", op.Label, err)

	return fmt.Errorf("%s: %w", op.Label, err)
}
