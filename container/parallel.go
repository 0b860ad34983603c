package container

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelForeachLive shards the live-slot range of the container
// across workers goroutines and calls f for each live slot. It is only
// safe on a frozen container: spec §5 permits parallel read-only
// traversal "provided no handle mutates" — f must not call
// InsertLines/RemoveLine/Compact or write through any handle shared
// across shards in a racy way. If workers <= 0, runtime.NumCPU() is
// used.
func (c *ChunkArrayContainer) ParallelForeachLive(workers int, f func(slot uint32)) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	total := c.highWater
	if total == 0 || workers <= 1 {
		c.ForeachLiveSlot(f)
		return nil
	}
	g, _ := errgroup.WithContext(context.Background())
	shard := (total + uint32(workers) - 1) / uint32(workers)
	for w := 0; w < workers; w++ {
		start := uint32(w) * shard
		end := start + shard
		if start >= total {
			break
		}
		if end > total {
			end = total
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if !isFreeVal(c.refcount.Get(i)) {
					f(i)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
