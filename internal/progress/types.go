package progress

import "fmt"

// TerminalCapabilities describes what the attached terminal supports
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
	Width           int
}

// ProgressSymbols holds the symbols used for progress display
type ProgressSymbols struct {
	Checkmark  string
	Failure    string
	SpinnerSet int
}

// FileInfo describes the file currently being installed, for display
type FileInfo struct {
	// Path is the destination-relative path shown to the user.
	Path string
	// Number is the 1-based position in the manifest.
	Number int
	// Total is the manifest length.
	Total int
}

// Validate checks that the file info is displayable
func (f FileInfo) Validate() error {
	if f.Path == "" {
		return fmt.Errorf("file info missing path")
	}
	if f.Number < 1 || f.Total < 1 || f.Number > f.Total {
		return fmt.Errorf("file counter out of range: %d of %d", f.Number, f.Total)
	}
	return nil
}

// formatCounter renders the [n/total] progress counter
func formatCounter(number, total int) string {
	return fmt.Sprintf("[%d/%d]", number, total)
}
