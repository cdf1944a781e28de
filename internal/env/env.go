package env

import (
	"os"
	"path/filepath"
	"runtime"
)

// BuildTemp returns the default scratch directory for native builds:
// <root>/build/temp.<goos>-<goarch>, with a "-debug" suffix for debug builds.
func BuildTemp(root string, debug bool) string {
	name := "temp." + runtime.GOOS + "-" + runtime.GOARCH
	if debug {
		name += "-debug"
	}
	return filepath.Join(root, "build", name)
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
