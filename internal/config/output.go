package config

// OutputConfig holds settings related to result output.
type OutputConfig struct {
	// KeepJournal controls whether journal entries are written for each script
	KeepJournal bool

	// KeepStatus controls whether the final status line is written
	KeepStatus bool

	// PrintBoard appends the final board diagram
	PrintBoard bool

	// PrintCaptured lists the captured pieces in capture order
	PrintCaptured bool

	// JSONFormat enables JSON output instead of text
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		KeepJournal: true,
		KeepStatus:  true,
	}
}
