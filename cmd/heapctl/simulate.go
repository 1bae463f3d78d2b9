package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/joshuapare/heapkit/heap"
	"github.com/spf13/cobra"
)

var (
	simCycles      int
	simAllocs      int
	simSurvival    float64
	simSeed        uint64
	simScrub       bool
	simMaxSegments int
	simMinSize     int
	simMaxSize     int
)

func init() {
	cmd := newSimulateCmd()
	cmd.Flags().IntVar(&simCycles, "cycles", 10, "Number of mark-and-sweep cycles")
	cmd.Flags().IntVar(&simAllocs, "allocs", 1000, "Allocations per cycle")
	cmd.Flags().Float64Var(&simSurvival, "survival", 0.5, "Probability an object survives a cycle")
	cmd.Flags().Uint64Var(&simSeed, "seed", 1, "Random seed")
	cmd.Flags().BoolVar(&simScrub, "scrub", false, "Enable diagnostic memory scrubbing")
	cmd.Flags().IntVar(&simMaxSegments, "max-segments", 1024, "Arena reservation in segments")
	cmd.Flags().IntVar(&simMinSize, "min-size", 8, "Smallest allocation size in bytes")
	cmd.Flags().IntVar(&simMaxSize, "max-size", 512, "Largest allocation size in bytes")
	rootCmd.AddCommand(cmd)
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Drive allocate/mark/sweep cycles against an in-process heap",
		Long: `The simulate command allocates objects of random sizes, marks a random
subset as survivors, sweeps, and repeats. It reports how segments migrate
between the free, active, and filled lists across cycles.

Example:
  heapctl simulate --cycles 20 --allocs 5000 --survival 0.3
  heapctl simulate --scrub --seed 42 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate()
		},
	}
	return cmd
}

// cycleReport captures the list population after one sweep.
type cycleReport struct {
	Cycle        int
	Live         int
	FreeSegments int
	Active       int
	Filled       int
}

// simReport is the final simulation summary.
type simReport struct {
	Cycles       int
	FailedAllocs int
	PerCycle     []cycleReport
	Stats        heap.HeapStats
}

func runSimulate() error {
	if simMinSize <= 0 || simMaxSize < simMinSize {
		return fmt.Errorf("invalid size range [%d, %d]", simMinSize, simMaxSize)
	}

	h, err := heap.New(&heap.Config{
		MaxSegments: simMaxSegments,
		SanityScrub: simScrub,
		Logger:      newLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to create heap: %w", err)
	}
	defer h.Close()

	rng := rand.New(rand.NewPCG(simSeed, simSeed))
	report := simReport{Cycles: simCycles}

	var live []heap.Ref
	for cycle := 0; cycle < simCycles; cycle++ {
		for i := 0; i < simAllocs; i++ {
			size := simMinSize + rng.IntN(simMaxSize-simMinSize+1)
			ref, _, allocErr := h.Alloc(size)
			if allocErr != nil {
				if errors.Is(allocErr, heap.ErrNoSpace) {
					report.FailedAllocs++
					break
				}
				return allocErr
			}
			live = append(live, ref)
		}

		h.BeginMark()
		kept := live[:0]
		for _, ref := range live {
			if rng.Float64() < simSurvival {
				h.Mark(ref)
				kept = append(kept, ref)
			}
		}
		live = kept
		h.Sweep()

		cr := cycleReport{
			Cycle:        cycle,
			Live:         len(live),
			FreeSegments: h.FreeSegments(),
		}
		for c := 0; c < h.NumClasses(); c++ {
			cr.Active += h.ActiveSegments(c)
			cr.Filled += h.FilledSegments(c)
		}
		report.PerCycle = append(report.PerCycle, cr)

		if !jsonOut {
			fmt.Printf("cycle %3d: live=%-7d free=%-5d active=%-5d filled=%-5d\n",
				cr.Cycle, cr.Live, cr.FreeSegments, cr.Active, cr.Filled)
		}
	}

	report.Stats = h.Stats()
	if jsonOut {
		return printJSON(report)
	}

	st := report.Stats
	fmt.Printf("\nAllocations:      %d (%d failed)\n", st.AllocCalls, report.FailedAllocs)
	fmt.Printf("Segments created: %d\n", st.SegmentsCreated)
	fmt.Printf("Segments reused:  %d\n", st.FreeSegmentReuses)
	fmt.Printf("Sweep passes:     %d\n", st.SweepPasses)
	fmt.Printf("Swept segments:   %d free, %d partial, %d filled\n",
		st.SweptFree, st.SweptPartial, st.SweptFilled)
	return nil
}
