// Package fetch retrieves remote file bytes through an external HTTP client
// tool. Two interchangeable transports are supported, curl and wget, probed
// in that order. Shelling out instead of using net/http keeps the tool's
// trust decisions (proxies, CA bundles, netrc) identical to whatever the
// machine's own HTTP client is already configured for, which is what the
// original shell installer guaranteed.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Transport tool binary names, in probe order.
const (
	ToolCurl = "curl"
	ToolWget = "wget"
)

// ErrNoTransport indicates neither supported HTTP client tool is installed.
// It is reported before any filesystem side effect.
var ErrNoTransport = errors.New("no supported transport tool found (need curl or wget in PATH)")

// lookPath is swapped in tests to simulate missing binaries.
var lookPath = exec.LookPath

// Fetcher retrieves the raw bytes of a remote file.
type Fetcher interface {
	// Name returns the transport tool name for display.
	Name() string
	// Fetch downloads the file at url and returns its content.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// runFunc executes a transport tool and returns its stdout.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// tool is an exec-backed Fetcher for a single transport binary.
type tool struct {
	name string
	run  runFunc
}

func (t *tool) Name() string {
	return t.name
}

func (t *tool) Fetch(ctx context.Context, url string) ([]byte, error) {
	out, err := t.run(ctx, t.name, argv(t.name, url)...)
	if err != nil {
		return nil, fmt.Errorf("%s: fetching %s: %w", t.name, url, describeExecError(err))
	}
	return out, nil
}

// argv builds the transport invocation. Both tools are told to fail on HTTP
// error statuses and write the body to stdout.
func argv(name, url string) []string {
	switch name {
	case ToolWget:
		return []string{"-qO-", url}
	default:
		return []string{"-fsSL", url}
	}
}

// Detect returns a Fetcher for the given transport preference. "auto" (or
// empty) probes curl then wget; a concrete name requires that tool to be
// present. ErrNoTransport is returned, possibly wrapped, when nothing
// usable is installed.
func Detect(preference string) (Fetcher, error) {
	switch preference {
	case "", "auto":
		for _, name := range []string{ToolCurl, ToolWget} {
			if _, err := lookPath(name); err == nil {
				return newTool(name), nil
			}
		}
		return nil, ErrNoTransport
	case ToolCurl, ToolWget:
		if _, err := lookPath(preference); err != nil {
			return nil, fmt.Errorf("%w (transport pinned to %s)", ErrNoTransport, preference)
		}
		return newTool(preference), nil
	default:
		return nil, fmt.Errorf("unknown transport %q (expected auto, curl, or wget)", preference)
	}
}

// Available reports whether the named transport tool is in PATH.
func Available(name string) bool {
	_, err := lookPath(name)
	return err == nil
}

func newTool(name string) *tool {
	return &tool{name: name, run: runCommand}
}

// runCommand executes the transport and captures stdout. Stderr is captured
// by Output into the ExitError for diagnostics.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// describeExecError folds the transport's stderr into the error message so
// the user sees what curl or wget actually complained about.
func describeExecError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		detail := strings.TrimSpace(string(exitErr.Stderr))
		if detail != "" {
			return fmt.Errorf("%w: %s", err, detail)
		}
	}
	return err
}
