// Package config provides runtime configuration for the pawn replay tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pawn-chess/pawn/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Workers is the number of scripts replayed concurrently (0 = one per CPU).
	Workers int

	// PlyLimit stops each script after this many plies (0 = no limit).
	PlyLimit int

	// StopOnError abandons the remaining scripts after the first failure.
	StopOnError bool

	// SuppressDuplicates drops scripts whose final position was already
	// output. With ExactDuplicates the ply count must match as well.
	SuppressDuplicates bool
	ExactDuplicates    bool

	Output *OutputConfig
	Filter *FilterConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Filter:     NewFilterConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d not in 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.PlyLimit < 0 {
		return fmt.Errorf("ply limit %d is negative: %w", c.PlyLimit, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams are required: %w", errors.ErrInvalidConfig)
	}
	if c.Filter != nil {
		if err := c.Filter.Validate(); err != nil {
			return err
		}
	}
	return nil
}
