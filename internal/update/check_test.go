package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReleaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckForUpdateNewerAvailable(t *testing.T) {
	t.Parallel()

	srv := newReleaseServer(t, http.StatusOK,
		`{"tag_name": "v0.4.0", "html_url": "https://github.com/ariel-frischer/claudekit/releases/tag/v0.4.0"}`)

	checker := NewChecker(0)
	checker.SetAPIURL(srv.URL)

	check, err := checker.CheckForUpdate(context.Background(), "v0.3.0")
	require.NoError(t, err)
	assert.True(t, check.UpdateAvailable)
	assert.Equal(t, "v0.4.0", check.LatestVersion)
	assert.Contains(t, check.ReleaseURL, "v0.4.0")
}

func TestCheckForUpdateUpToDate(t *testing.T) {
	t.Parallel()

	srv := newReleaseServer(t, http.StatusOK, `{"tag_name": "v0.3.0"}`)

	checker := NewChecker(0)
	checker.SetAPIURL(srv.URL)

	check, err := checker.CheckForUpdate(context.Background(), "v0.3.0")
	require.NoError(t, err)
	assert.False(t, check.UpdateAvailable)
}

func TestCheckForUpdateDevBuild(t *testing.T) {
	t.Parallel()

	// Dev builds never phone home.
	checker := NewChecker(0)
	checker.SetAPIURL("http://127.0.0.1:0")

	check, err := checker.CheckForUpdate(context.Background(), "dev")
	require.NoError(t, err)
	assert.False(t, check.UpdateAvailable)
}

func TestCheckForUpdateHTTPErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		status  int
		wantErr string
	}{
		"not found":    {status: http.StatusNotFound, wantErr: "no releases found"},
		"rate limited": {status: http.StatusForbidden, wantErr: "rate limit exceeded"},
		"server error": {status: http.StatusInternalServerError, wantErr: "unexpected status code"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := newReleaseServer(t, tt.status, "")
			checker := NewChecker(0)
			checker.SetAPIURL(srv.URL)

			_, err := checker.CheckForUpdate(context.Background(), "v0.3.0")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    Version
		wantErr bool
	}{
		"with v prefix":    {input: "v1.2.3", want: Version{Major: 1, Minor: 2, Patch: 3, Raw: "v1.2.3"}},
		"without v prefix": {input: "0.6.1", want: Version{Minor: 6, Patch: 1, Raw: "0.6.1"}},
		"dev":              {input: "dev", want: Version{Raw: "dev"}},
		"empty":            {input: "", want: Version{Raw: ""}},
		"two parts":        {input: "1.2", wantErr: true},
		"not numeric":      {input: "a.b.c", wantErr: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestVersionCompare(t *testing.T) {
	t.Parallel()

	v1, err := ParseVersion("v1.0.0")
	require.NoError(t, err)
	v2, err := ParseVersion("v1.0.1")
	require.NoError(t, err)
	dev, err := ParseVersion("dev")
	require.NoError(t, err)

	assert.True(t, v2.IsNewerThan(v1))
	assert.False(t, v1.IsNewerThan(v2))
	assert.False(t, dev.IsNewerThan(v1))
	assert.True(t, v1.IsNewerThan(dev))
	assert.Equal(t, 0, v1.Compare(v1))
}
