// Package workers runs the vault's background jobs.
package workers

import "context"

// Worker is a background job bound to a context. Start returns immediately;
// Stop blocks until the job has exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
