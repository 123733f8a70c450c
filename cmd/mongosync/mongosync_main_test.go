package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stderr bytes.Buffer
	cmd := newRootCmd(&stderr)
	cmd.SetOut(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stderr.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *exitError
	require.True(t, errors.As(err, &exitErr), "expected exit error, got %v", err)
	return exitErr.code
}

func TestRootCmd_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			// chosen behavior: a missing database exits 1 like any other config error
			name: "missing database",
			args: []string{"--clientURI", "mongodb://localhost:27017", "--export", "--excludes", ""},
			want: "You must provide a database.",
		},
		{
			name: "missing mode",
			args: []string{"--clientURI", "mongodb://localhost:27017", "--database", "shop", "--excludes", ""},
			want: "Unsupported method.",
		},
		{
			name: "missing excludes",
			args: []string{"--clientURI", "mongodb://localhost:27017", "--database", "shop", "--export"},
			want: "--excludes",
		},
		{
			name: "both modes",
			args: []string{"--clientURI", "mongodb://localhost:27017", "--database", "shop", "--export", "--import", "--excludes", ""},
			want: "mutually exclusive",
		},
		{
			name: "unknown flag",
			args: []string{"--clientURI", "mongodb://localhost:27017", "--database", "shop", "--export", "--excludes", "", "--bogus"},
			want: "unknown flag: --bogus",
		},
		{
			name: "flag without value",
			args: []string{"--clientURI"},
			want: "flag needs an argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, 1, exitCode(t, err))
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "Usage:")
		})
	}
}

func TestRootCmd_InvalidClientURI(t *testing.T) {
	_, err := execute(t,
		"--clientURI", "not-a-uri",
		"--database", "shop",
		"--export",
		"--excludes", "",
		"--basedir", t.TempDir(),
	)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, err.Error(), "Invalid Client URI")
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}
