package config

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/tripplanner/internal/ctxlog"
)

// Settings mirrors the attributes accepted in a settings file.
type Settings struct {
	LogLevel  string   `hcl:"log_level,optional"`
	LogFormat string   `hcl:"log_format,optional"`
	Output    string   `hcl:"output,optional"`
	Plan      *bool    `hcl:"plan,optional"`
	Remain    hcl.Body `hcl:",remain"`
}

// Load parses the settings file at path. A missing file is an error, since
// the path was asked for explicitly; unknown attributes are ignored.
func Load(ctx context.Context, path string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading settings file.", "path", path)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("error accessing settings file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var s Settings
	diags = gohcl.DecodeBody(file.Body, nil, &s)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	logger.Debug("Settings file loaded.", "log_level", s.LogLevel, "log_format", s.LogFormat, "output", s.Output)
	return &s, nil
}
