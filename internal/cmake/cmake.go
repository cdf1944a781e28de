// Package cmake runs the cmake executable on behalf of the build step.
package cmake

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/qiniu/x/log"
	"golang.org/x/sys/execabs"
)

// Spawner runs one external command to completion.
type Spawner interface {
	Spawn(ctx context.Context, argv []string) error
}

// Exec spawns commands as child processes sharing the caller's stdio.
type Exec struct {
	// Env overrides entries of the inherited environment.
	Env map[string]string
	// DryRun logs commands instead of running them.
	DryRun bool
}

var _ Spawner = (*Exec)(nil)

func (e *Exec) Spawn(ctx context.Context, argv []string) error {
	log.Infof("%s", CommandLine(argv))
	if e.DryRun || len(argv) == 0 {
		return nil
	}
	cmd := execabs.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(e.Env) > 0 {
		cmd.Env = mergeEnv(os.Environ(), e.Env)
	}
	return cmd.Run()
}

// CommandLine renders argv for logs, quoting arguments that contain spaces.
func CommandLine(argv []string) string {
	parts := make([]string, len(argv))
	for i, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t") {
			a = `"` + a + `"`
		}
		parts[i] = a
	}
	return strings.Join(parts, " ")
}

func mergeEnv(base []string, override map[string]string) []string {
	envMap := make(map[string]string, len(base))
	for _, kv := range base {
		if k, v, ok := strings.Cut(kv, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range override {
		envMap[k] = v
	}
	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+envMap[k])
	}
	return out
}
