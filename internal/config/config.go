package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/progdeck/progdeck/internal/ctxlog"
)

// Config holds every tunable the launcher reads at startup. Descriptors for
// fixed behavior (batch size, store size threshold) deliberately do not
// appear here; those are constants owned by the sequence engine.
type Config struct {
	// ProgramsPath is the directory scanned for drop-in program files.
	ProgramsPath string `hcl:"programs_path,optional"`
	// ProgramPrefix is the file-name prefix that admits a candidate.
	ProgramPrefix string `hcl:"program_prefix,optional"`
	// StorePath is the sequence engine's persistent store file.
	StorePath string `hcl:"store_path,optional"`
	// LeaderboardPath is the sliding puzzle's leaderboard file.
	LeaderboardPath string `hcl:"leaderboard_path,optional"`

	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		ProgramsPath:    "programs",
		ProgramPrefix:   "prog_",
		StorePath:       "recaman_sequence.json",
		LeaderboardPath: "sliding_puzzle_leaderboard.json",
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load reads the HCL config file at path on top of the defaults. A missing
// file is not an error; any other parse or decode failure is.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)

	cfg := Default()
	if path == "" {
		return &cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Debug("No config file found, using defaults.", "path", path)
		return &cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config file %s: %w", path, diags)
	}

	evalCtx, err := evalContext(path)
	if err != nil {
		return nil, err
	}
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config file %s: %w", path, diags)
	}

	logger.Debug("Config file loaded.", "path", path)
	return &cfg, nil
}

// evalContext builds the variable scope config expressions may reference.
func evalContext(configPath string) (*hcl.EvalContext, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	configDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, fmt.Errorf("resolving config directory: %w", err)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"home":       cty.StringVal(home),
			"config_dir": cty.StringVal(configDir),
		},
	}, nil
}
