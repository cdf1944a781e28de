package clib

import (
	"context"
	"os"
	"slices"
)

// recorder is a cmake.Spawner that records each invocation together with
// the working directory it was made from.
type recorder struct {
	calls [][]string
	dirs  []string
	// failAt makes the n-th call (1-based) return err.
	failAt int
	err    error
}

func (r *recorder) Spawn(ctx context.Context, argv []string) error {
	r.calls = append(r.calls, slices.Clone(argv))
	wd, _ := os.Getwd()
	r.dirs = append(r.dirs, wd)
	if r.failAt == len(r.calls) {
		return r.err
	}
	return nil
}
