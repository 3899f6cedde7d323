package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/garagekit/garagekit/cmd/garageboard/logger"
	"github.com/garagekit/garagekit/pkg/facility"
)

// Build information, set at link time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false

	// Extract --debug/-d flag
	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) > 0 {
		switch filteredArgs[0] {
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("garageboard %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		}
	}

	// The config file is optional: without one the board runs a default
	// three-level facility.
	cfg := facility.DefaultConfig()
	if len(filteredArgs) > 0 {
		path := filteredArgs[0]
		if _, err := os.Stat(path); err != nil {
			logger.Error("config file not found", "path", path, "error", err)
			fmt.Fprintf(os.Stderr, "Error: config file not found: %s\n", path)
			os.Exit(1)
		}
		loaded, err := facility.LoadConfig(path)
		if err != nil {
			logger.Error("config load failed", "path", path, "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger.Info("starting garageboard",
		"levels", cfg.MaxLevels, "capacity", cfg.LevelCapacity,
		"strategy", cfg.Strategy, "debug", debugMode)

	// Create the TUI model
	m, err := NewModel(cfg)
	if err != nil {
		logger.Error("facility construction failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create the Bubbletea program
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	// Run the program
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("garageboard exited normally")
}

func printHelp() {
	fmt.Println("garageboard - Interactive dashboard for a parking facility")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  garageboard [options] [config-file]")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches a live terminal dashboard for a parking facility. Vehicles")
	fmt.Println("  can be parked and exited by hand or generated automatically, and the")
	fmt.Println("  board follows every free-capacity broadcast as it happens.")
	fmt.Println()
	fmt.Println("  Features:")
	fmt.Println("    - Per-level occupancy bars, including levels not built yet")
	fmt.Println("    - Recent activity log with ticket numbers")
	fmt.Println("    - Auto traffic mode for watching a strategy fill the facility")
	fmt.Println("    - One-key stats summary copied to the clipboard")
	fmt.Println()
	fmt.Println("  Keys:")
	fmt.Println("    c           Park a car")
	fmt.Println("    m           Park a motorcycle")
	fmt.Println("    x           Exit the oldest vehicle")
	fmt.Println("    a           Toggle auto traffic")
	fmt.Println("    y           Copy stats summary")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.garageboard/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  garageboard")
	fmt.Println("  garageboard facility.yaml")
	fmt.Println("  garageboard --debug facility.yaml")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'garagectl' command instead.")
}
