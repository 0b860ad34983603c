//go:build !linux

package container

// AdviseSequential is a no-op outside Linux; madvise has no portable
// equivalent worth wiring here.
func AdviseSequential(blocks [][]byte) {}
