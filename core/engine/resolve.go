package engine

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// exiftoolName is the executable file name looked for in a bundled
// tools directory.
func exiftoolName() string {
	if runtime.GOOS == "windows" {
		return "exiftool.exe"
	}
	return "exiftool"
}

// resolveExecutable locates the engine binary with a three-tier probe:
// an explicitly configured path, a tools/ directory next to the
// application executable, then the system PATH.
func resolveExecutable(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", fmt.Errorf("%w: configured path %s: %v", ErrUnavailable, configured, err)
		}
		return configured, nil
	}

	if self, err := os.Executable(); err == nil {
		bundled := filepath.Join(filepath.Dir(self), "tools", exiftoolName())
		if _, err := os.Stat(bundled); err == nil {
			return bundled, nil
		}
	}

	if path, err := exec.LookPath("exiftool"); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("%w: exiftool not found on PATH; install it and restart", ErrUnavailable)
}
