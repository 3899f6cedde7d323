package main

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/garagekit/garagekit/garage"
	"github.com/garagekit/garagekit/garage/watch"
	"github.com/garagekit/garagekit/pkg/facility"
)

var (
	benchWorkers  int
	benchOps      int
	benchLevels   int
	benchCapacity int
	benchStrategy string
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchWorkers, "workers", 8, "Concurrent traffic goroutines")
	cmd.Flags().IntVar(&benchOps, "ops", 10000, "Operations per worker")
	cmd.Flags().IntVar(&benchLevels, "levels", 4, "Levels the facility may create")
	cmd.Flags().IntVar(&benchCapacity, "capacity", 50, "Slots per level")
	cmd.Flags().StringVar(&benchStrategy, "strategy", "firstfit",
		"Placement strategy (firstfit, bestfit, roundrobin, random)")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Hammer a facility with concurrent traffic and report throughput",
		Long: `The bench command runs an alternating park/exit workload from many
goroutines against one facility and reports throughput, rejection counts,
and broadcast totals.

Example:
  garagectl bench
  garagectl bench --workers 16 --ops 50000 --strategy bestfit
  garagectl bench --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

// BenchResult is the report printed after a run.
type BenchResult struct {
	Workers      int
	OpsPerWorker int
	Elapsed      time.Duration
	OpsPerSecond float64
	Broadcasts   int
	Stats        garage.Stats
}

func runBench() error {
	g, err := facility.New(facility.Config{
		MaxLevels:     benchLevels,
		LevelCapacity: benchCapacity,
		Strategy:      benchStrategy,
	})
	if err != nil {
		return err
	}

	recorder := watch.NewRecorder()
	g.Watch(recorder)

	printVerbose("Facility %s: %d levels x %d slots, %s placement\n",
		g.ID(), benchLevels, benchCapacity, benchStrategy)
	printText("running %d workers x %d ops...\n", benchWorkers, benchOps)

	var exitFailures atomic.Int64

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < benchWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var held []garage.TicketID
			for i := 0; i < benchOps; i++ {
				if i%2 == 1 && len(held) > 0 {
					if err := g.Exit(held[0]); err != nil {
						exitFailures.Add(1)
					}
					held = held[1:]
					continue
				}
				id, err := g.Park("bench")
				if err != nil {
					continue // rejections are counted by the facility
				}
				held = append(held, id)
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	if n := exitFailures.Load(); n > 0 {
		printText("warning: %d exits of held tickets failed\n", n)
	}

	totalOps := benchWorkers * benchOps
	result := BenchResult{
		Workers:      benchWorkers,
		OpsPerWorker: benchOps,
		Elapsed:      elapsed,
		OpsPerSecond: float64(totalOps) / elapsed.Seconds(),
		Broadcasts:   recorder.Len(),
		Stats:        g.Stats(),
	}

	if jsonOut {
		return printJSON(result)
	}

	printInfo("\nBench:\n")
	printInfo("  Elapsed: %s\n", result.Elapsed)
	printInfo("  Throughput: %.0f ops/sec\n", result.OpsPerSecond)
	printInfo("  Broadcasts: %d\n", result.Broadcasts)
	return printReport(g)
}
