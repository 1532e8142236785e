// Package progress renders per-file install progress: an animated spinner
// on interactive terminals, plain line-per-file output everywhere else.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Display orchestrates the per-file progress indicators for an install run
type Display struct {
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	spinner      *spinner.Spinner
	out          io.Writer
}

// NewDisplay creates a progress display for the given terminal capabilities
func NewDisplay(caps TerminalCapabilities) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		out:          os.Stdout,
	}
}

// SetOutput redirects non-spinner output, for tests.
func (d *Display) SetOutput(w io.Writer) {
	d.out = w
}

// StartFile begins displaying progress for one manifest entry
func (d *Display) StartFile(info FileInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}

	msg := fmt.Sprintf("%s Fetching %s", formatCounter(info.Number, info.Total), info.Path)

	if d.capabilities.IsTTY {
		// TTY mode: animate while the transfer runs
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
		)
		d.spinner.Writer = os.Stderr // keep stdout clean for the summary lines
		d.spinner.Suffix = " " + msg
		d.spinner.Start()
	} else {
		fmt.Fprintln(d.out, msg)
	}

	return nil
}

// CompleteFile stops the spinner and prints the per-file success line
func (d *Display) CompleteFile(info FileInfo) {
	d.stopSpinner()
	fmt.Fprintf(d.out, "%s %s %s\n", d.symbols.Checkmark, formatCounter(info.Number, info.Total), info.Path)
}

// FailFile stops the spinner and prints the per-file failure line
func (d *Display) FailFile(info FileInfo, err error) {
	d.stopSpinner()
	fmt.Fprintf(d.out, "%s %s %s: %v\n", d.symbols.Failure, formatCounter(info.Number, info.Total), info.Path, err)
}

// Stop halts any running spinner without printing a status line
func (d *Display) Stop() {
	d.stopSpinner()
}

func (d *Display) stopSpinner() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
