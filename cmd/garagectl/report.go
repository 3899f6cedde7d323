package main

import (
	"github.com/garagekit/garagekit/garage"
)

// FacilityReport is the end-of-run shape shared by demo, simulate, and
// bench, for both text and JSON output.
type FacilityReport struct {
	Levels []garage.LevelSnapshot
	Stats  garage.Stats
}

func buildReport(g *garage.Garage) FacilityReport {
	return FacilityReport{
		Levels: g.Snapshot(),
		Stats:  g.Stats(),
	}
}

// printReport renders the facility's final state.
func printReport(g *garage.Garage) error {
	report := buildReport(g)

	if jsonOut {
		return printJSON(report)
	}

	printInfo("\nLevels:\n")
	if len(report.Levels) == 0 {
		printInfo("  (none created)\n")
	}
	for _, l := range report.Levels {
		printInfo("  level %d: %d/%d occupied\n", l.Index, l.Capacity-l.Free, l.Capacity)
	}

	printInfo("\nCounters:\n")
	printInfo("  Parks: %d\n", report.Stats.Parks)
	printInfo("  Exits: %d\n", report.Stats.Exits)
	printInfo("  Rejections: %d\n", report.Stats.Rejections)
	printInfo("  Unknown exits: %d\n", report.Stats.UnknownExits)
	printInfo("  Outstanding tickets: %d\n", report.Stats.Outstanding)
	printInfo("  Free capacity: %d of %d\n", report.Stats.FreeCapacity, report.Stats.Capacity)

	return nil
}
