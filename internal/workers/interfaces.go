// Package workers runs the background jobs of the diary server.
package workers

import (
	"context"
	"time"
)

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper evicts entries that have been idle for too long and reports how
// many were removed. *viewstate.Sessions satisfies it.
type Sweeper interface {
	Sweep(now time.Time) int
}
