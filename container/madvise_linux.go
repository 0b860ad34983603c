//go:build linux

package container

import "golang.org/x/sys/unix"

// AdviseSequential hints the kernel that the chunk blocks returned by
// ChunkPointers are about to be read sequentially for bulk I/O or GPU
// upload, matching the "direct I/O" use case the chunk-pointer escape
// hatch exists for. It is advisory only; failures are ignored, as a
// rejected madvise has no effect on correctness.
func AdviseSequential(blocks [][]byte) {
	for _, b := range blocks {
		if len(b) == 0 {
			continue
		}
		_ = unix.Madvise(b, unix.MADV_SEQUENTIAL)
	}
}
