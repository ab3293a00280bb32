package adapter

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLauncher_ConfiguredBrowser(t *testing.T) {
	l := NewLauncher("firefox --new-tab", NullLogger())
	var got *exec.Cmd
	l.start = func(cmd *exec.Cmd) error {
		got = cmd
		return nil
	}

	require.NoError(t, l.Open("https://www.imdb.com/title/tt1375666/"))

	require.NotNil(t, got)
	assert.Equal(t, []string{"firefox", "--new-tab", "https://www.imdb.com/title/tt1375666/"}, got.Args)
}

func TestLauncher_RejectsNonWebURLs(t *testing.T) {
	l := NewLauncher("", NullLogger())
	l.start = func(cmd *exec.Cmd) error {
		t.Fatalf("unexpected launch: %v", cmd.Args)
		return nil
	}

	for _, raw := range []string{"", "N/A", "file:///etc/passwd", "javascript:alert(1)", "https://"} {
		assert.Error(t, l.Open(raw), raw)
	}
}

func TestLauncher_StartFailure(t *testing.T) {
	l := NewLauncher("", NullLogger())
	l.start = func(cmd *exec.Cmd) error { return errors.New("exec: not found") }

	err := l.Open("https://example.com")

	assert.ErrorContains(t, err, "failed to open browser")
}

func TestDefaultCommand(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{goos: "darwin", want: []string{"open", "https://example.com"}},
		{goos: "windows", want: []string{"cmd", "/c", "start", "", "https://example.com"}},
		{goos: "linux", want: []string{"xdg-open", "https://example.com"}},
		{goos: "freebsd", want: []string{"xdg-open", "https://example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultCommand(tt.goos, "https://example.com").Args)
		})
	}
}
