// Package version provides build version information and runtime metadata.
package version

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// These are set via ldflags at build time
	Version = ""
	Commit  = ""
	Date    = ""

	once sync.Once
)

// execCommand is swapped out in tests.
var execCommand = exec.Command

// Reset clears the cached values so the next accessor re-resolves them.
// Intended for tests.
func Reset() {
	Version = ""
	Commit = ""
	Date = ""
	once = sync.Once{}
}

func ensureInitialized() {
	once.Do(func() {
		if Date == "" {
			Date = time.Now().Format("2006-01-02")
		}
		if Commit == "" {
			Commit = gitOutput("describe", "--always", "--dirty")
			if Commit == "" {
				Commit = "unknown"
			}
		}
		if Version == "" {
			Version = strings.TrimPrefix(gitOutput("describe", "--tags", "--abbrev=0"), "v")
			if Version == "" {
				Version = "dev"
			}
		}
	})
}

func gitOutput(args ...string) string {
	cmd := execCommand("git", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return ""
	}
	return strings.TrimSpace(out.String())
}

// GetVersion returns the semantic version, falling back to git tags.
func GetVersion() string {
	ensureInitialized()
	return Version
}

// GetCommit returns the git commit identifier.
func GetCommit() string {
	ensureInitialized()
	return Commit
}

// GetDate returns the build date.
func GetDate() string {
	ensureInitialized()
	return Date
}

// Info returns a one-line version summary for the --version flag.
func Info() string {
	ensureInitialized()
	return fmt.Sprintf("bikeshare-tui %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
