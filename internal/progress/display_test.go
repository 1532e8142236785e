package progress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileInfoValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		info    FileInfo
		wantErr bool
	}{
		"valid":            {info: FileInfo{Path: "CLAUDE.md", Number: 1, Total: 11}},
		"last entry":       {info: FileInfo{Path: "x", Number: 11, Total: 11}},
		"missing path":     {info: FileInfo{Number: 1, Total: 11}, wantErr: true},
		"zero number":      {info: FileInfo{Path: "x", Number: 0, Total: 11}, wantErr: true},
		"number past total": {info: FileInfo{Path: "x", Number: 12, Total: 11}, wantErr: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tt.info.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDisplayNonTTY(t *testing.T) {
	t.Parallel()

	caps := TerminalCapabilities{IsTTY: false}
	d := NewDisplay(caps)
	var buf bytes.Buffer
	d.SetOutput(&buf)

	info := FileInfo{Path: ".claude/security.md", Number: 2, Total: 11}
	require.NoError(t, d.StartFile(info))
	d.CompleteFile(info)

	out := buf.String()
	assert.Contains(t, out, "[2/11]")
	assert.Contains(t, out, ".claude/security.md")
	assert.Contains(t, out, "[OK]")
}

func TestDisplayFailure(t *testing.T) {
	t.Parallel()

	d := NewDisplay(TerminalCapabilities{})
	var buf bytes.Buffer
	d.SetOutput(&buf)

	info := FileInfo{Path: ".claude/database.md", Number: 7, Total: 11}
	require.NoError(t, d.StartFile(info))
	d.FailFile(info, errors.New("exit status 22"))

	out := buf.String()
	assert.Contains(t, out, "[FAIL]")
	assert.Contains(t, out, "exit status 22")
}

func TestSelectSymbols(t *testing.T) {
	t.Parallel()

	unicode := SelectSymbols(TerminalCapabilities{SupportsUnicode: true})
	assert.Equal(t, "✓", unicode.Checkmark)

	ascii := SelectSymbols(TerminalCapabilities{SupportsUnicode: false})
	assert.Equal(t, "[OK]", ascii.Checkmark)
}

func TestStartFileInvalid(t *testing.T) {
	t.Parallel()

	d := NewDisplay(TerminalCapabilities{})
	assert.Error(t, d.StartFile(FileInfo{}))
}
