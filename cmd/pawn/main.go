// pawn replays coordinate move scripts through the move-legality engine and
// reports the journal and final status of each game.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pawn-chess/pawn/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("pawn version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if *sequenceFile != "" {
		lines, err := readFileList(*sequenceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading sequence file %s: %v\n", *sequenceFile, err)
			os.Exit(1)
		}
		cfg.Filter.Sequences = append(cfg.Filter.Sequences, lines...)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	inputs := flag.Args()
	if *fileListFile != "" {
		listed, err := readFileList(*fileListFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file list %s: %v\n", *fileListFile, err)
			os.Exit(1)
		}
		inputs = append(inputs, listed...)
	}

	stats := run(cfg, inputs, os.Stdin)

	closeFile(cfg.OutputFile, os.Stdout)
	closeFile(cfg.LogFile, os.Stderr)

	if stats.Failed > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func closeFile(w io.Writer, std *os.File) {
	if f, ok := w.(*os.File); ok && f != std {
		f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

// readFileList reads non-comment lines, such as script paths, one per line. Blank lines and lines
// starting with '#' are skipped.
func readFileList(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only file

	var paths []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	return paths, scanner.Err()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pawn [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess move scripts and reports each game's journal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  One move per line as source and destination squares: e2e4, e2-e4 or e2 e4.\n")
	fmt.Fprintf(os.Stderr, "  Text after '#' is a comment. With no files, the script is read from stdin.\n")
}
