package models

import (
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// NextID returns a millisecond-timestamp id. When two calls land in
// the same millisecond the later one is bumped past the earlier, so
// ids issued by one process are unique and strictly increasing.
func NextID() int64 {
	for {
		now := time.Now().UnixMilli()
		last := lastID.Load()
		if now <= last {
			now = last + 1
		}
		if lastID.CompareAndSwap(last, now) {
			return now
		}
	}
}
