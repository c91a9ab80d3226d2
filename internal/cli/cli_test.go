package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	require.Equal(t, "progdeck.hcl", cfg.ConfigPath)
	require.Empty(t, cfg.ProgramsPath)
	require.Empty(t, cfg.LogLevel)
}

func TestParse_Overrides(t *testing.T) {
	cfg, exit, err := Parse([]string{
		"-config", "custom.hcl",
		"-programs-path", "units",
		"-store-path", "seq.json",
		"-log-level", "DEBUG",
		"-log-format", "json",
	}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	require.Equal(t, "custom.hcl", cfg.ConfigPath)
	require.Equal(t, "units", cfg.ProgramsPath)
	require.Equal(t, "seq.json", cfg.StorePath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestParse_HelpExitsCleanly(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "menu-driven program launcher")
}

func TestParse_InvalidLogLevel(t *testing.T) {
	_, _, err := Parse([]string{"-log-level", "loud"}, &bytes.Buffer{})
	require.Error(t, err)

	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogFormat(t *testing.T) {
	_, _, err := Parse([]string{"-log-format", "xml"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestParse_UnknownFlag(t *testing.T) {
	_, _, err := Parse([]string{"-bogus"}, &bytes.Buffer{})
	require.Error(t, err)

	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
}
