// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/pawn-chess/pawn/internal/config"
)

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ", ")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

var (
	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	appendOutput  = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput    = flag.Bool("J", false, "Output in JSON format")
	noJournal     = flag.Bool("nojournal", false, "Don't output journal entries")
	noStatus      = flag.Bool("nostatus", false, "Don't output the final status line")
	printBoard    = flag.Bool("board", false, "Print the final board diagram")
	printCaptured = flag.Bool("captured", false, "List captured pieces in capture order")

	// Replay options
	plyLimit    = flag.Int("plylimit", 0, "Stop each script after N plies (0 = no limit)")
	stopOnError = flag.Bool("x", false, "Stop after the first failing script")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress scripts ending in an already output position")
	exactDuplicates    = flag.Bool("exactdup", false, "With -D, duplicates must also have the same ply count")

	// Filtering options
	checkFilter     = flag.Bool("check", false, "Only output scripts that gave check")
	checkmateFilter = flag.Bool("checkmate", false, "Only output scripts ending in checkmate")
	stalemateFilter = flag.Bool("stalemate", false, "Only output scripts ending in stalemate")
	minPly          = flag.Int("minply", 0, "Minimum ply count")
	maxPly          = flag.Int("maxply", 0, "Maximum ply count (0 = no limit)")
	negateMatch     = flag.Bool("n", false, "Output scripts that DON'T match criteria")

	// Positional filters
	materialMatch    = flag.String("z", "", "Material pattern to match in any position, e.g. KQ:kr")
	exactMaterial    = flag.Bool("exactmaterial", false, "With -z, material must match exactly")
	invertPlacements = flag.Bool("invert", false, "Also match -placement patterns with colours inverted")
	sequenceFile     = flag.String("sequences", "", "File of move sequences to match, one per line")
	placements       stringList
	sequences        stringList

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 per-move commentary")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// File input options
	fileListFile = flag.String("f", "", "File containing list of script files to replay (one per line)")
)

func init() {
	flag.Var(&placements, "placement", "Placement pattern to match in any position (repeatable)")
	flag.Var(&sequences, "sequence", "Move sequence to match, e.g. \"e2e4 e7e5\" (repeatable)")
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.Workers = *workers
	cfg.PlyLimit = *plyLimit
	cfg.StopOnError = *stopOnError
	cfg.SuppressDuplicates = *suppressDuplicates
	cfg.ExactDuplicates = *exactDuplicates

	applyOutputFlags(cfg)
	applyFilterFlags(cfg)
}

// applyOutputFlags applies output layout flags.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.KeepJournal = !*noJournal
	cfg.Output.KeepStatus = !*noStatus
	cfg.Output.PrintBoard = *printBoard
	cfg.Output.PrintCaptured = *printCaptured
	cfg.Output.JSONFormat = *jsonOutput
}

// applyFilterFlags applies result filtering flags.
func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.MatchCheck = *checkFilter
	cfg.Filter.MatchCheckmate = *checkmateFilter
	cfg.Filter.MatchStalemate = *stalemateFilter
	cfg.Filter.Negate = *negateMatch

	cfg.Filter.Material = *materialMatch
	cfg.Filter.ExactMaterial = *exactMaterial
	cfg.Filter.Placements = append([]string(nil), placements...)
	cfg.Filter.InvertPlacements = *invertPlacements
	cfg.Filter.Sequences = append([]string(nil), sequences...)

	if *minPly > 0 || *maxPly > 0 {
		cfg.Filter.CheckPlyBounds = true
		cfg.Filter.MinPly = *minPly
		cfg.Filter.MaxPly = *maxPly
	}
}
