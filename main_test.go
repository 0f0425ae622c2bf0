package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runMain(t *testing.T, args ...string) int {
	t.Helper()
	oldArgs, oldFlags := os.Args, flag.CommandLine
	t.Cleanup(func() {
		os.Args, flag.CommandLine = oldArgs, oldFlags
	})
	os.Args = append([]string{"gamesearch"}, args...)
	flag.CommandLine = flag.NewFlagSet("gamesearch", flag.ContinueOnError)
	return mainWithCode()
}

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})
	return dir
}

func TestMainWithCode(t *testing.T) {
	t.Run("failed run still writes the CPU profile", func(t *testing.T) {
		dir := inTempDir(t)

		code := runMain(t, "-experiment", "bogus", "-profile")

		require.Equal(t, 1, code, "Unknown experiment should fail the run")
		require.FileExists(t, filepath.Join(dir, "cpu.pprof"), "Profiler should stop before exiting")
	})

	t.Run("rejecting an unknown strategy", func(t *testing.T) {
		require.Equal(t, 1, runMain(t, "-white", "greedy"))
	})

	t.Run("rejecting an unknown log level", func(t *testing.T) {
		require.Equal(t, 2, runMain(t, "-log-level", "loud"))
	})
}
