package domain

import "context"

// SyncCountsWorker refreshes cached reaction counts for blogs whose
// reactions changed. Writes go straight to the store; the worker only keeps
// the cache in step with it.
type SyncCountsWorker interface {
	Start(ctx context.Context)

	// Send enqueues a count refresh for the given blog. Never blocks; a full
	// queue drops the task and the cache entry expires by TTL instead.
	Send(blogID int64)
}
