package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robworks/go-mdfences/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if len(cfg.Input.Extensions) != 2 {
		t.Errorf("Extensions = %v, want .md and .markdown", cfg.Input.Extensions)
	}
	if cfg.Preview.Enabled {
		t.Error("Preview.Enabled = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "full config",
			content: `input:
  defaultDir: docs
  extensions: [".md"]
output:
  defaultDir: site
preview:
  enabled: true
  title: Docs Preview
workers: 4
`,
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Input.DefaultDir != "docs" {
					t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "docs")
				}
				if !cfg.Preview.Enabled || cfg.Preview.Title != "Docs Preview" {
					t.Errorf("Preview = %+v, want enabled with title", cfg.Preview)
				}
				if cfg.Workers != 4 {
					t.Errorf("Workers = %d, want 4", cfg.Workers)
				}
			},
		},
		{
			name:    "empty extensions fall back to defaults",
			content: "input:\n  defaultDir: docs\n",
			check: func(t *testing.T, cfg *config.Config) {
				if len(cfg.Input.Extensions) != 2 {
					t.Errorf("Extensions = %v, want defaults", cfg.Input.Extensions)
				}
			},
		},
		{
			name:    "unknown key rejected",
			content: "inptu:\n  defaultDir: docs\n",
			wantErr: config.ErrConfigParse,
		},
		{
			name:    "invalid YAML",
			content: "input: [unclosed\n",
			wantErr: config.ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			cfg, err := config.Load(path)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v, want nil", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("Load() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadEmptyName(t *testing.T) {
	_, err := config.Load("")
	if !errors.Is(err, config.ErrEmptyConfigName) {
		t.Errorf("Load() error = %v, want ErrEmptyConfigName", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr bool
	}{
		{
			name:   "defaults valid",
			mutate: func(*config.Config) {},
		},
		{
			name:    "extension without dot",
			mutate:  func(cfg *config.Config) { cfg.Input.Extensions = []string{"md"} },
			wantErr: true,
		},
		{
			name:    "extension with separator",
			mutate:  func(cfg *config.Config) { cfg.Input.Extensions = []string{"./md"} },
			wantErr: true,
		},
		{
			name:    "negative workers",
			mutate:  func(cfg *config.Config) { cfg.Workers = -1 },
			wantErr: true,
		},
		{
			name:    "too many workers",
			mutate:  func(cfg *config.Config) { cfg.Workers = config.MaxWorkers + 1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
