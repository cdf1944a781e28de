// Package config gathers the build step's settings from flags, the
// environment and an optional cmakeclib.yaml file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName  = "cmakeclib"
	fileType  = "yaml"
	envPrefix = "CMAKECLIB"
)

// Keys, shared by flags, environment variables and the config file.
const (
	KeyDebug      = "debug"
	KeyDryRun     = "dry-run"
	KeyBuildTemp  = "build-temp"
	KeyAdapterDir = "adapter-dir"
	KeyCMake      = "cmake"
	KeyMinVersion = "cmake-min-version"
	KeyVerbose    = "verbose"
	KeyEnv        = "env"
)

// Settings is the configuration state handed to the build step.
type Settings struct {
	Debug      bool
	DryRun     bool
	Verbose    bool
	BuildTemp  string
	AdapterDir string
	CMake      string
	MinVersion string
	// Env holds KEY=VALUE overrides for the cmake child processes.
	Env []string
}

// ParseEnv turns KEY=VALUE entries into a map. Later entries win.
func ParseEnv(entries []string) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(entries))
	for _, kv := range entries {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid env entry %q, want KEY=VALUE", kv)
		}
		env[k] = v
	}
	return env, nil
}

// Load resolves Settings. Flags that were set win over CMAKECLIB_* variables,
// which win over cmakeclib.yaml in dir. A missing config file is not an error.
func Load(dir string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyCMake, "cmake")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading config: %w", err)
		}
	}
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Settings{}, err
		}
	}

	return Settings{
		Debug:      v.GetBool(KeyDebug),
		DryRun:     v.GetBool(KeyDryRun),
		Verbose:    v.GetBool(KeyVerbose),
		BuildTemp:  v.GetString(KeyBuildTemp),
		AdapterDir: v.GetString(KeyAdapterDir),
		CMake:      v.GetString(KeyCMake),
		MinVersion: v.GetString(KeyMinVersion),
		Env:        v.GetStringSlice(KeyEnv),
	}, nil
}
