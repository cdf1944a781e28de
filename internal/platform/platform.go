// Package platform classifies the host the native library is built on.
package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/qiniu/x/log"
)

// Platform is one of the host families the cmake builder knows how to drive.
type Platform int

const (
	Linux Platform = iota + 1
	Mac
	Windows
)

// ErrUnsupported is returned by Classify for unknown host identifiers.
var ErrUnsupported = errors.New("platform not supported")

var names = map[Platform]string{
	Linux:   "linux",
	Mac:     "darwin",
	Windows: "windows",
}

func (p Platform) String() string {
	if s, ok := names[p]; ok {
		return s
	}
	return fmt.Sprintf("Platform(%d)", int(p))
}

func (p Platform) IsLinux() bool   { return p == Linux }
func (p Platform) IsMac() bool     { return p == Mac }
func (p Platform) IsWindows() bool { return p == Windows }

// Classify maps a host platform identifier to a Platform.
// Any identifier containing "linux" is Linux; "darwin" is Mac;
// "windows", "win32" and "cygwin" are Windows.
func Classify(id string) (Platform, error) {
	switch {
	case strings.Contains(id, "linux"):
		return Linux, nil
	case id == "darwin":
		return Mac, nil
	case id == "windows", id == "win32", id == "cygwin":
		return Windows, nil
	}
	return 0, fmt.Errorf("cmake builder: %s not supported: %w", id, ErrUnsupported)
}

var host Platform

func init() {
	p, err := Classify(runtime.GOOS)
	if err != nil {
		log.Fatalf("%v", err)
	}
	host = p
}

// Host returns the classification of the running host.
func Host() Platform {
	return host
}
