// Package mirror layers a best-effort secondary backend behind a primary
// one. Writes hit the primary first; a primary failure aborts the operation
// and the secondary is never touched. A secondary failure is logged and
// swallowed, so the two stores may diverge. Reads come from the primary
// only. There is no reconciliation pass; divergence stays until corrected
// by hand.
package mirror

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const defaultBudget = 2 * time.Second

// attempt runs a secondary write under its own deadline so a slow mirror
// can't hold the request past the configured budget.
func attempt(ctx context.Context, budget time.Duration, op string, fn func(ctx context.Context) error) {
	if budget <= 0 {
		budget = defaultBudget
	}

	mctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), budget)
	defer cancel()

	if err := fn(mctx); err != nil {
		zap.L().Warn("Secondary store write failed, stores may have diverged",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}
