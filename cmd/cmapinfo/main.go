// Command cmapinfo prints diagnostic stats for a persisted
// ChunkArrayContainer snapshot: capacity, live/free slot counts,
// column list, and approximate memory footprint.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"ngonmap/container"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: cmapinfo <snapshot-file>")
		os.Exit(2)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "cmapinfo: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	c := container.NewContainer(0)
	if err := c.LoadWithDigest(f); err != nil {
		fmt.Fprintf(os.Stderr, "cmapinfo: %v\n", err)
		os.Exit(1)
	}

	stats := c.Stats()
	printStats(os.Args[1], stats, c.AttributeNames())
}

func printStats(path string, stats container.Stats, names []string) {
	colorized := isatty.IsTerminal(os.Stdout.Fd())
	header := func(s string) string {
		if !colorized {
			return s
		}
		return "\x1b[1m" + s + "\x1b[0m"
	}

	fmt.Printf("%s %s\n", header("snapshot:"), path)
	fmt.Printf("%s %s\n", header("stats:"), stats.String())
	fmt.Printf("%s\n", header("columns:"))
	for _, n := range names {
		fmt.Printf("  - %s\n", n)
	}
}
