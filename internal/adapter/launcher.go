package adapter

import (
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Launcher opens web pages (IMDb, official sites, reviews) in a browser
type Launcher struct {
	command string   // configured browser command, empty for system default
	args    []string // additional arguments for the browser
	logger  *slog.Logger

	// start runs a prepared command; replaced in tests
	start func(cmd *exec.Cmd) error
}

// NewLauncher creates a Launcher. command may include arguments, e.g. "firefox --new-tab".
func NewLauncher(command string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}

	fields := strings.Fields(command)
	l := &Launcher{
		logger: logger,
		start:  func(cmd *exec.Cmd) error { return cmd.Start() },
	}
	if len(fields) > 0 {
		l.command = fields[0]
		l.args = fields[1:]
	}
	return l
}

// Open opens rawURL in the configured browser or the system default
func (l *Launcher) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open %q: not a web URL", rawURL)
	}

	cmd := l.buildCommand(rawURL)
	l.logger.Info("opening url", "command", cmd.Path, "args", cmd.Args[1:])

	if err := l.start(cmd); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// buildCommand builds the command for rawURL; a configured browser takes precedence
func (l *Launcher) buildCommand(rawURL string) *exec.Cmd {
	if l.command != "" {
		args := append(append([]string{}, l.args...), rawURL)
		return exec.Command(l.command, args...)
	}
	return defaultCommand(runtime.GOOS, rawURL)
}

// defaultCommand opens the URL using the system default handler
func defaultCommand(goos, rawURL string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", rawURL)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", rawURL)
	default:
		// Linux and other Unix-like systems
		return exec.Command("xdg-open", rawURL)
	}
}
