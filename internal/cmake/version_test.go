package cmake

import (
	"context"
	"errors"
	"os/exec"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		out  string
		want string
	}{
		{"cmake version 3.28.1\n\nCMake suite maintained and supported by Kitware (kitware.com/cmake).\n", "3.28.1"},
		{"cmake version 3.10.2\n", "3.10.2"},
		{"cmake version 3.30.0-rc2\n", "3.30.0"},
		{"cmake version 4.0\n", "4.0"},
	}
	for _, tt := range tests {
		got, err := parseVersion(tt.out)
		if err != nil {
			t.Fatalf("parseVersion(%q) error: %v", tt.out, err)
		}
		if got != tt.want {
			t.Errorf("parseVersion(%q) = %q, want %q", tt.out, got, tt.want)
		}
	}
	if _, err := parseVersion("ninja 1.11"); err == nil {
		t.Fatal("parseVersion accepted non-cmake output")
	}
}

func TestCompareVersion(t *testing.T) {
	if err := compareVersion("3.28.1", "3.10"); err != nil {
		t.Fatalf("3.28.1 >= 3.10: %v", err)
	}
	if err := compareVersion("3.10.0", "3.10.0"); err != nil {
		t.Fatalf("equal versions: %v", err)
	}
	if err := compareVersion("3.5.1", "3.10"); !errors.Is(err, ErrTooOld) {
		t.Fatalf("3.5.1 < 3.10: err = %v, want ErrTooOld", err)
	}
	if err := compareVersion("3.5.1", "three"); err == nil || errors.Is(err, ErrTooOld) {
		t.Fatalf("invalid minimum: err = %v", err)
	}
}

func TestCheckVersionE2E(t *testing.T) {
	if _, err := exec.LookPath("cmake"); err != nil {
		t.Skip("cmake not found in PATH")
	}
	if err := CheckVersion(context.Background(), "cmake", "2.8"); err != nil {
		t.Fatalf("CheckVersion: %v", err)
	}
	if err := CheckVersion(context.Background(), "cmake", "999.0"); !errors.Is(err, ErrTooOld) {
		t.Fatalf("CheckVersion(999.0) err = %v, want ErrTooOld", err)
	}
}
