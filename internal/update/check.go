// Package update checks GitHub for newer claudekit releases. Unlike the
// installer's transfers, this talks HTTP directly: the check is an optional
// nicety on the version command and should not depend on curl or wget being
// present.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	// GitHubAPIURL is the endpoint for fetching the latest release.
	GitHubAPIURL = "https://api.github.com/repos/ariel-frischer/claudekit/releases/latest"

	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 5 * time.Second
)

// ReleaseInfo represents a GitHub release.
type ReleaseInfo struct {
	TagName     string    `json:"tag_name"`
	HTMLURL     string    `json:"html_url"`
	PublishedAt time.Time `json:"published_at"`
}

// UpdateCheck contains the result of an update check.
type UpdateCheck struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

// Checker provides update checking functionality.
type Checker struct {
	httpClient *http.Client
	apiURL     string
}

// NewChecker creates a new update checker with the given timeout.
func NewChecker(timeout time.Duration) *Checker {
	if timeout == 0 {
		timeout = DefaultHTTPTimeout
	}
	return &Checker{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     GitHubAPIURL,
	}
}

// SetAPIURL sets the API URL for the checker. This is intended for testing purposes.
func (c *Checker) SetAPIURL(url string) {
	c.apiURL = url
}

// CheckForUpdate checks GitHub for a newer version of claudekit.
func (c *Checker) CheckForUpdate(ctx context.Context, currentVersion string) (*UpdateCheck, error) {
	current, err := ParseVersion(currentVersion)
	if err != nil {
		return nil, fmt.Errorf("parsing current version: %w", err)
	}

	if current.IsDev() {
		return &UpdateCheck{
			CurrentVersion:  currentVersion,
			UpdateAvailable: false,
		}, nil
	}

	release, err := c.fetchLatestRelease(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching latest release: %w", err)
	}

	latest, err := ParseVersion(release.TagName)
	if err != nil {
		return nil, fmt.Errorf("parsing latest version: %w", err)
	}

	return &UpdateCheck{
		CurrentVersion:  currentVersion,
		LatestVersion:   release.TagName,
		UpdateAvailable: latest.IsNewerThan(current),
		ReleaseURL:      release.HTMLURL,
	}, nil
}

// fetchLatestRelease fetches the latest release from GitHub API.
func (c *Checker) fetchLatestRelease(ctx context.Context) (*ReleaseInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "claudekit-update-checker")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("rate limit exceeded")
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("no releases found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var release ReleaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &release, nil
}
