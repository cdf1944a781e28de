package internal

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/goplus/cmakeclib/internal/clib"
	"github.com/goplus/cmakeclib/internal/cmake"
	"github.com/goplus/cmakeclib/internal/config"
	"github.com/goplus/cmakeclib/internal/env"
	"github.com/goplus/cmakeclib/internal/platform"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var buildClibCmd = &cobra.Command{
	Use:          "build_clib",
	Short:        "Build the native backend library",
	Long:         `build_clib configures the dpnp backend with cmake in the build-temp directory, then builds it and installs it into the package tree.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runBuildClib,
}

func init() {
	flags := buildClibCmd.Flags()
	flags.BoolP(config.KeyDebug, "g", false, "Build the Debug configuration instead of Release")
	flags.BoolP(config.KeyDryRun, "n", false, "Configure only and print the remaining commands")
	flags.StringP(config.KeyBuildTemp, "t", "", "Scratch directory for cmake (default <root>/build/temp.<os>-<arch>)")
	flags.String(config.KeyAdapterDir, "", "Adapter directory; its parent is the project root (default: directory of this binary)")
	flags.String(config.KeyCMake, "cmake", "cmake executable")
	flags.String(config.KeyMinVersion, "", "Fail unless cmake is at least this version")
	flags.StringSliceP(config.KeyEnv, "e", nil, "KEY=VALUE environment override for cmake (repeatable)")
	flags.BoolP(config.KeyVerbose, "v", false, "Enable debug logging")
	rootCmd.AddCommand(buildClibCmd)
}

func runBuildClib(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(".", cmd.Flags())
	if err != nil {
		return err
	}
	if settings.Verbose {
		log.SetOutputLevel(log.Ldebug)
	}

	step, err := newStep(settings)
	if err != nil {
		return err
	}
	if err := step.Run(context.Background()); err != nil {
		return fmt.Errorf("build_clib failed: %w", err)
	}
	return nil
}

func newStep(settings config.Settings) (*clib.Step, error) {
	overrides, err := config.ParseEnv(settings.Env)
	if err != nil {
		return nil, err
	}

	adapterDir := settings.AdapterDir
	if adapterDir == "" {
		dir, err := env.ExecutableDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate adapter directory: %w", err)
		}
		adapterDir = dir
	}
	adapterDir, err = filepath.Abs(adapterDir)
	if err != nil {
		return nil, err
	}

	buildTemp := settings.BuildTemp
	if buildTemp == "" {
		buildTemp = env.BuildTemp(clib.ResolvePaths(adapterDir).Root, settings.Debug)
	}
	if buildTemp, err = filepath.Abs(buildTemp); err != nil {
		return nil, err
	}

	return &clib.Step{
		Platform:   platform.Host(),
		Debug:      settings.Debug,
		DryRun:     settings.DryRun,
		BuildTemp:  buildTemp,
		AdapterDir: adapterDir,
		CMake:      settings.CMake,
		MinVersion: settings.MinVersion,
		Spawner:    &cmake.Exec{Env: overrides, DryRun: settings.DryRun},
	}, nil
}
