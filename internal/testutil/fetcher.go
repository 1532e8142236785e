// Package testutil provides test utilities and helpers for claudekit tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// FakeFetcher is a scripted transport for install tests. It serves a fixed
// default payload for every URL unless a suffix-matched override or failure
// is configured, and records every URL it was asked for.
type FakeFetcher struct {
	mu sync.Mutex

	defaultBody []byte
	bodies      map[string][]byte
	failures    map[string]error
	calls       []string
}

// NewFakeFetcher creates a FakeFetcher serving body for every request.
func NewFakeFetcher(body string) *FakeFetcher {
	return &FakeFetcher{
		defaultBody: []byte(body),
		bodies:      make(map[string][]byte),
		failures:    make(map[string]error),
	}
}

// Name implements fetch.Fetcher.
func (f *FakeFetcher) Name() string {
	return "fake"
}

// RespondWith serves body for any URL ending in pathSuffix.
func (f *FakeFetcher) RespondWith(pathSuffix, body string) *FakeFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies[pathSuffix] = []byte(body)
	return f
}

// FailOn makes any URL ending in pathSuffix return err.
func (f *FakeFetcher) FailOn(pathSuffix string, err error) *FakeFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[pathSuffix] = err
	return f
}

// Fetch implements fetch.Fetcher with the scripted behavior.
func (f *FakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, url)

	for suffix, err := range f.failures {
		if strings.HasSuffix(url, suffix) {
			return nil, fmt.Errorf("fake: fetching %s: %w", url, err)
		}
	}
	for suffix, body := range f.bodies {
		if strings.HasSuffix(url, suffix) {
			return body, nil
		}
	}
	return f.defaultBody, nil
}

// Calls returns the URLs fetched so far, in order.
func (f *FakeFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}
