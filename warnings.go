package typeset

import "strings"

// Warning stages reported by Run.
const (
	WarnStyles   = "styles"
	WarnEngine   = "engine"
	WarnValidate = "validate"
)

// Warning is a non-fatal, degraded-mode note from a run: an unknown style
// id substituted with defaults, a failed reference extraction, or a
// conformity score below threshold. The run still produced a usable
// document.
type Warning struct {
	// Stage names the pipeline stage that degraded.
	Stage string

	// Message is a human-readable description.
	Message string
}

// FormatWarnings renders warnings as a single semicolon-separated string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.Stage + ": " + w.Message
	}
	return strings.Join(parts, "; ")
}
