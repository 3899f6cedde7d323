package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/garagekit/garagekit/garage"
	"github.com/garagekit/garagekit/garage/vehicle"
	"github.com/garagekit/garagekit/garage/watch"
	"github.com/garagekit/garagekit/pkg/facility"
)

var (
	demoLevels      int
	demoCapacity    int
	demoStrategy    string
	demoCars        int
	demoMotorcycles int
)

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVar(&demoLevels, "levels", 3, "Levels the facility may create")
	cmd.Flags().IntVar(&demoCapacity, "capacity", 5, "Slots per level")
	cmd.Flags().StringVar(&demoStrategy, "strategy", "firstfit",
		"Placement strategy (firstfit, bestfit, roundrobin, random)")
	cmd.Flags().IntVar(&demoCars, "cars", 4, "Cars to park")
	cmd.Flags().IntVar(&demoMotorcycles, "motorcycles", 2, "Motorcycles to park")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a short parking session and print the facility state",
		Long: `The demo command builds a facility, parks a batch of cars and
motorcycles, exits the first vehicle, and prints the per-level state and
facility counters. An entrance board echoes the free total after every
change.

Example:
  garagectl demo
  garagectl demo --levels 2 --capacity 3 --strategy bestfit
  garagectl demo --cars 10 --motorcycles 0 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	g, err := facility.New(facility.Config{
		MaxLevels:     demoLevels,
		LevelCapacity: demoCapacity,
		Strategy:      demoStrategy,
	})
	if err != nil {
		return err
	}

	printVerbose("Facility %s: %d levels x %d slots, %s placement\n",
		g.ID(), demoLevels, demoCapacity, demoStrategy)

	if !quiet && !jsonOut {
		g.Watch(watch.NewBoard(os.Stdout))
	}
	g.Watch(watch.NewLog(slog.Default(), g.ID()))

	var tickets []garage.TicketID
	park := func(kind vehicle.Kind, n int) {
		for i := 0; i < n; i++ {
			tag := vehicle.NewTag(kind)
			id, err := g.Park(tag)
			if err != nil {
				printText("rejected %s: %v\n", tag, err)
				continue
			}
			printText("parked %s -> ticket %d\n", tag, id)
			tickets = append(tickets, id)
		}
	}
	park(vehicle.Car, demoCars)
	park(vehicle.Motorcycle, demoMotorcycles)

	if len(tickets) > 0 {
		printText("exiting ticket %d\n", tickets[0])
		if err := g.Exit(tickets[0]); err != nil {
			return fmt.Errorf("exit ticket %d: %w", tickets[0], err)
		}
	}

	return printReport(g)
}
