package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// baselineStrategy is the reference point every other strategy is compared
// against.
const baselineStrategy = "firstfit"

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string
	Strategy    string // empty for benchmarks without a strategy axis
	Shape       string
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ComparisonResult compares one strategy against the first-fit baseline.
type ComparisonResult struct {
	Operation      string
	Shape          string
	Strategy       string
	StrategyNs     float64
	BaselineNs     float64
	Ratio          float64 // baseline ns / strategy ns; above 1.0 beats first-fit
	StrategyMem    int64
	BaselineMem    int64
	StrategyAllocs int64
	BaselineAllocs int64
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	// Read benchmark output
	var scanner *bufio.Scanner
	var inputF *os.File
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		inputF = f
		scanner = bufio.NewScanner(f)
	} else {
		scanner = bufio.NewScanner(os.Stdin)
	}

	// Parse benchmarks
	results := parseBenchmarks(scanner)

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	// Compare each strategy against the baseline
	comparisons := generateComparisons(results)

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Generated %d comparisons\n", len(comparisons))
	}

	// Generate markdown report
	report := generateMarkdownReport(comparisons, results)

	// Write output
	if *outputFile != "" {
		err := os.WriteFile(*outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			if inputF != nil {
				inputF.Close()
			}
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
		}
	} else {
		fmt.Fprint(os.Stdout, report)
	}

	// Close input file if opened
	if inputF != nil {
		inputF.Close()
	}
}

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	// Regex to parse benchmark output lines
	// BenchmarkPlacement/firstfit/wide-8    10000    12450 ns/op    4096 B/op    8 allocs/op
	benchmarkRegex := regexp.MustCompile(
		`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+(?:B|MB)/op)?(?:\s+([\d.]+)\s+allocs/op)?`,
	)

	for scanner.Scan() {
		line := scanner.Text()

		// Try to parse as JSON (from -json flag)
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		// Parse benchmark line
		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		name := matches[1]
		iterations, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		var bytesPerOp int64
		var allocsPerOp int64

		if matches[4] != "" {
			bytesPerOp, _ = strconv.ParseInt(matches[4], 10, 64)
		}
		if matches[5] != "" {
			allocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}

		operation, strategy, shape := splitBenchName(name)

		results = append(results, BenchmarkResult{
			Name:        name,
			Operation:   operation,
			Strategy:    strategy,
			Shape:       shape,
			Iterations:  iterations,
			NsPerOp:     nsPerOp,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	return results
}

// splitBenchName breaks a benchmark name into its axes.
// Strategy benches look like Benchmark<Operation>/<strategy>/<shape>-<procs>;
// core benches are just Benchmark<Operation>-<procs>.
func splitBenchName(name string) (operation, strategy, shape string) {
	parts := strings.Split(name, "/")

	// Remove the -N GOMAXPROCS suffix from the last part
	last := parts[len(parts)-1]
	if idx := strings.LastIndex(last, "-"); idx > 0 {
		parts[len(parts)-1] = last[:idx]
	}

	operation = strings.TrimPrefix(parts[0], "Benchmark")
	switch len(parts) {
	case 2:
		shape = parts[1]
	case 3:
		strategy = parts[1]
		shape = parts[2]
	}
	return operation, strategy, shape
}

func generateComparisons(results []BenchmarkResult) []ComparisonResult {
	// Group strategy results by operation and shape
	type key struct {
		operation string
		shape     string
	}

	grouped := make(map[key]map[string]BenchmarkResult)

	for _, result := range results {
		if result.Strategy == "" {
			continue
		}
		k := key{result.Operation, result.Shape}
		if grouped[k] == nil {
			grouped[k] = make(map[string]BenchmarkResult)
		}
		grouped[k][result.Strategy] = result
	}

	var comparisons []ComparisonResult

	for k, strategies := range grouped {
		baseline, hasBaseline := strategies[baselineStrategy]
		if !hasBaseline {
			continue
		}

		for name, result := range strategies {
			if name == baselineStrategy {
				continue
			}

			comparisons = append(comparisons, ComparisonResult{
				Operation:      k.operation,
				Shape:          k.shape,
				Strategy:       name,
				StrategyNs:     result.NsPerOp,
				BaselineNs:     baseline.NsPerOp,
				Ratio:          baseline.NsPerOp / result.NsPerOp,
				StrategyMem:    result.BytesPerOp,
				BaselineMem:    baseline.BytesPerOp,
				StrategyAllocs: result.AllocsPerOp,
				BaselineAllocs: baseline.AllocsPerOp,
			})
		}
	}

	// Sort by operation, shape, then strategy
	sort.Slice(comparisons, func(i, j int) bool {
		if comparisons[i].Operation != comparisons[j].Operation {
			return comparisons[i].Operation < comparisons[j].Operation
		}
		if comparisons[i].Shape != comparisons[j].Shape {
			return comparisons[i].Shape < comparisons[j].Shape
		}
		return comparisons[i].Strategy < comparisons[j].Strategy
	})

	return comparisons
}

func generateMarkdownReport(comparisons []ComparisonResult, results []BenchmarkResult) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	// Summary statistics
	fasterThanBaseline := 0
	slowerThanBaseline := 0
	totalRatio := 0.0

	for _, comp := range comparisons {
		if comp.Ratio > 1.0 {
			fasterThanBaseline++
		} else if comp.Ratio < 1.0 {
			slowerThanBaseline++
		}
		totalRatio += comp.Ratio
	}

	avgRatio := 0.0
	if len(comparisons) > 0 {
		avgRatio = totalRatio / float64(len(comparisons))
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total benchmarks**: %d\n", len(results)))
	sb.WriteString(fmt.Sprintf("- **Strategy comparisons** (vs %s): %d\n",
		baselineStrategy, len(comparisons)))
	if len(comparisons) > 0 {
		sb.WriteString(
			fmt.Sprintf(
				"  - faster than %s: %d (%.1f%%)\n",
				baselineStrategy,
				fasterThanBaseline,
				float64(fasterThanBaseline)/float64(len(comparisons))*100,
			),
		)
		sb.WriteString(
			fmt.Sprintf(
				"  - slower than %s: %d (%.1f%%)\n",
				baselineStrategy,
				slowerThanBaseline,
				float64(slowerThanBaseline)/float64(len(comparisons))*100,
			),
		)
		sb.WriteString(fmt.Sprintf("  - Average ratio: **%.2fx**\n", avgRatio))
	}
	sb.WriteString("\n")

	// Strategy comparison table
	if len(comparisons) > 0 {
		sb.WriteString("## Strategy Comparison\n\n")
		sb.WriteString(
			"| Operation | Shape | Strategy | ns/op | " + baselineStrategy +
				" (ns/op) | Ratio | Memory (B/op) | Allocs |\n",
		)
		sb.WriteString(
			"|-----------|-------|----------|-------|----------------|-------|---------------|--------|\n",
		)

		for _, comp := range comparisons {
			indicator := "✓"
			ratioStyle := "**"
			if comp.Ratio < 1.0 {
				indicator = "✗"
				ratioStyle = ""
			}

			memIndicator := ""
			if comp.StrategyMem < comp.BaselineMem {
				memIndicator = " ✓"
			} else if comp.StrategyMem > comp.BaselineMem {
				memIndicator = " ✗"
			}

			allocIndicator := ""
			if comp.StrategyAllocs < comp.BaselineAllocs {
				allocIndicator = " ✓"
			} else if comp.StrategyAllocs > comp.BaselineAllocs {
				allocIndicator = " ✗"
			}

			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s%.2fx%s %s | %s vs %s%s | %s vs %s%s |\n",
				comp.Operation,
				comp.Shape,
				comp.Strategy,
				formatNumber(comp.StrategyNs),
				formatNumber(comp.BaselineNs),
				ratioStyle,
				comp.Ratio,
				ratioStyle,
				indicator,
				formatBytes(comp.StrategyMem),
				formatBytes(comp.BaselineMem),
				memIndicator,
				formatNumber(float64(comp.StrategyAllocs)),
				formatNumber(float64(comp.BaselineAllocs)),
				allocIndicator,
			))
		}

		sb.WriteString("\n")
	}

	// Core operations without a strategy axis
	var core []BenchmarkResult
	for _, result := range results {
		if result.Strategy == "" {
			core = append(core, result)
		}
	}
	sort.Slice(core, func(i, j int) bool { return core[i].Name < core[j].Name })

	if len(core) > 0 {
		sb.WriteString("## Core Operations\n\n")
		sb.WriteString("| Operation | ns/op | Memory (B/op) | Allocs |\n")
		sb.WriteString("|-----------|-------|---------------|--------|\n")

		for _, result := range core {
			op := result.Operation
			if result.Shape != "" {
				op = op + "/" + result.Shape
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				op,
				formatNumber(result.NsPerOp),
				formatBytes(result.BytesPerOp),
				formatNumber(float64(result.AllocsPerOp)),
			))
		}

		sb.WriteString("\n")
	}

	// Notes
	sb.WriteString("## Notes\n\n")
	sb.WriteString("- **Ratio > 1.0**: strategy is faster than " + baselineStrategy + " ✓\n")
	sb.WriteString("- **Ratio < 1.0**: strategy is slower than " + baselineStrategy + " ✗\n")
	sb.WriteString("- **Memory comparison**: Lower is better\n")
	sb.WriteString("- **Allocations**: Fewer is better\n")
	sb.WriteString("- Placement cost is one park plus one exit on a half-occupied facility\n")

	return sb.String()
}

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.0f", n)
}

func formatBytes(b int64) string {
	if b >= 1024*1024 {
		return fmt.Sprintf("%.2fMB", float64(b)/(1024*1024))
	} else if b >= 1024 {
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%dB", b)
}
