// Package render consumes formatted blocks and produces output for concrete
// targets. The typography, alignment, spacing and marker resolution shared
// by all targets lives in ResolveBlockStyle; the two adapters here, a
// page-flow HTML fragment and paginated plain text, both build on it so the
// targets never drift apart.
package render
