package main

import (
	"fmt"

	"github.com/joshuapare/heapkit/heap"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newClassesCmd())
}

func newClassesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Show the size-class layout",
		Long: `The classes command prints the heap's fixed size-class table: block
size, blocks per segment, and the per-segment space lost to bookkeeping.

Example:
  heapctl classes
  heapctl classes --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses()
		},
	}
	return cmd
}

func runClasses() error {
	classes := heap.Classes()

	if jsonOut {
		return printJSON(classes)
	}

	segSize := heap.SegmentSize()
	fmt.Printf("Segment size: %d bytes\n\n", segSize)
	fmt.Printf("%-6s %12s %12s %12s %8s\n", "Class", "Block size", "Blocks/seg", "Usable", "Waste")
	for _, c := range classes {
		usable := c.BlockSize * c.BlockCount
		waste := segSize - usable - c.BlockCount // one mark byte per block
		fmt.Printf("%-6d %12d %12d %12d %8d\n", c.Class, c.BlockSize, c.BlockCount, usable, waste)
	}
	return nil
}
