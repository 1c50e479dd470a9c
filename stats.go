package scratch

import "sync/atomic"

// Collector tracks temp-file lifecycle counts using atomic counters. Wire
// one into Options.Stats to observe a handle's activity; the library keeps
// no counters of its own.
type Collector struct {
	filesCreated  atomic.Int64
	filesRemoved  atomic.Int64
	filesPromoted atomic.Int64
	bytesPromoted atomic.Int64
}

// Snapshot is a point-in-time read of all counters.
type Snapshot struct {
	FilesCreated  int64
	FilesRemoved  int64
	FilesPromoted int64
	BytesPromoted int64
}

// Snapshot reads every counter atomically (individually, not as a group).
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		FilesCreated:  c.filesCreated.Load(),
		FilesRemoved:  c.filesRemoved.Load(),
		FilesPromoted: c.filesPromoted.Load(),
		BytesPromoted: c.bytesPromoted.Load(),
	}
}
