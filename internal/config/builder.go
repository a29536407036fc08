package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithWorkers sets the number of concurrent replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithPlyLimit stops each script after n plies.
func (b *ConfigBuilder) WithPlyLimit(n int) *ConfigBuilder {
	b.cfg.PlyLimit = n
	return b
}

// WithStopOnError abandons remaining scripts after the first failure.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.StopOnError = enabled
	return b
}

// WithDuplicateSuppression drops repeated final positions.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled, exact bool) *ConfigBuilder {
	b.cfg.SuppressDuplicates = enabled
	b.cfg.ExactDuplicates = exact
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithBoard appends the final board diagram to each result.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.PrintBoard = enabled
	return b
}

// WithCaptured lists captured pieces with each result.
func (b *ConfigBuilder) WithCaptured(enabled bool) *ConfigBuilder {
	b.cfg.Output.PrintCaptured = enabled
	return b
}

// KeepJournal controls whether journal entries are written.
func (b *ConfigBuilder) KeepJournal(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepJournal = keep
	return b
}

// WithCheckmateFilter enables checkmate-only filtering.
func (b *ConfigBuilder) WithCheckmateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheckmate = enabled
	return b
}

// WithStalemateFilter enables stalemate-only filtering.
func (b *ConfigBuilder) WithStalemateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchStalemate = enabled
	return b
}

// WithPlyBounds keeps only scripts whose played ply count is within bounds.
// A zero upper bound means no upper limit.
func (b *ConfigBuilder) WithPlyBounds(lower, upper int) *ConfigBuilder {
	b.cfg.Filter.CheckPlyBounds = true
	b.cfg.Filter.MinPly = lower
	b.cfg.Filter.MaxPly = upper
	return b
}
