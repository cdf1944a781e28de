package cmake

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/mod/semver"
	"golang.org/x/sys/execabs"
)

// ErrTooOld is returned by CheckVersion when the installed cmake is older
// than required.
var ErrTooOld = errors.New("cmake is too old")

var versionRE = regexp.MustCompile(`cmake version (\d+\.\d+(?:\.\d+)?)`)

// Version returns the major.minor[.patch] version reported by bin --version.
func Version(ctx context.Context, bin string) (string, error) {
	out, err := execabs.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return "", err
	}
	return parseVersion(string(out))
}

func parseVersion(out string) (string, error) {
	m := versionRE.FindStringSubmatch(out)
	if m == nil {
		return "", fmt.Errorf("cmake: unrecognized version output %q", out)
	}
	return m[1], nil
}

// CheckVersion fails with ErrTooOld unless bin reports at least version min.
func CheckVersion(ctx context.Context, bin, min string) error {
	have, err := Version(ctx, bin)
	if err != nil {
		return err
	}
	return compareVersion(have, min)
}

func compareVersion(have, min string) error {
	want := "v" + min
	if !semver.IsValid(want) {
		return fmt.Errorf("cmake: invalid minimum version %q", min)
	}
	if semver.Compare("v"+have, want) < 0 {
		return fmt.Errorf("cmake %s < %s: %w", have, min, ErrTooOld)
	}
	return nil
}
