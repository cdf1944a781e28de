// Package clib implements the native-library build step: it configures,
// builds and installs the dpnp backend with cmake.
package clib

import (
	"context"
	"os"
	"path/filepath"

	"github.com/goplus/cmakeclib/internal/cmake"
	"github.com/goplus/cmakeclib/internal/platform"
	"github.com/qiniu/x/log"
)

// Paths locates the project pieces the build step touches.
type Paths struct {
	Root    string // project root
	Backend string // cmake source directory
	Install string // install prefix
}

// ResolvePaths derives Paths from the directory holding the adapter.
// The project root is the parent of adapterDir.
func ResolvePaths(adapterDir string) Paths {
	root := filepath.Dir(filepath.Clean(adapterDir))
	return Paths{
		Root:    root,
		Backend: filepath.Join(root, "dpnp", "backend"),
		Install: filepath.Join(root, "dpnp"),
	}
}

// ConfigName returns the cmake configuration label.
func ConfigName(debug bool) string {
	if debug {
		return "Debug"
	}
	return "Release"
}

// ConfigureArgs returns the arguments for the configure invocation.
func ConfigureArgs(p platform.Platform, debug bool, installDir string) []string {
	var args []string
	if p.IsWindows() {
		args = append(args, "-GNinja")
	}
	return append(args,
		"-DCMAKE_BUILD_TYPE="+ConfigName(debug),
		"-DDPNP_INSTALL_PREFIX="+installDir,
	)
}

// BuildArgs returns the arguments shared by the build and install invocations.
func BuildArgs() []string {
	return []string{"--", "-v"}
}

// Step is the build_clib lifecycle hook.
type Step struct {
	Platform   platform.Platform
	Debug      bool
	DryRun     bool
	BuildTemp  string
	AdapterDir string

	// CMake is the cmake executable; "cmake" if empty.
	CMake string
	// MinVersion, if set, is checked against cmake --version before
	// configuring. Dry runs skip the check.
	MinVersion string

	// Spawner runs the cmake invocations; a cmake.Exec if nil.
	Spawner cmake.Spawner
}

// Run configures the backend in BuildTemp and, unless DryRun is set, builds
// and installs it. It changes the process working directory to BuildTemp
// and leaves it there. The first failure is returned as is.
func (s *Step) Run(ctx context.Context) error {
	paths := ResolvePaths(s.AdapterDir)
	log.Infof("Project directory is: %s", paths.Root)

	if err := os.MkdirAll(s.BuildTemp, 0o755); err != nil {
		return err
	}

	bin := s.CMake
	if bin == "" {
		bin = "cmake"
	}
	if s.MinVersion != "" && !s.DryRun {
		if err := cmake.CheckVersion(ctx, bin, s.MinVersion); err != nil {
			return err
		}
	}

	configureArgs := ConfigureArgs(s.Platform, s.Debug, paths.Install)
	buildArgs := BuildArgs()
	log.Debugf("build temp %s, config %s", s.BuildTemp, ConfigName(s.Debug))

	if err := os.Chdir(s.BuildTemp); err != nil {
		return err
	}

	steps := [][]string{
		append([]string{bin, paths.Backend}, configureArgs...),
	}
	if !s.DryRun {
		steps = append(steps,
			append([]string{bin, "--build", "."}, buildArgs...),
			append([]string{bin, "--build", ".", "--target", "install"}, buildArgs...),
		)
	}
	spawner := s.Spawner
	if spawner == nil {
		spawner = &cmake.Exec{DryRun: s.DryRun}
	}
	for _, argv := range steps {
		if err := spawner.Spawn(ctx, argv); err != nil {
			return err
		}
	}
	return nil
}
