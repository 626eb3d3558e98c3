package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "sinclair-decoder") {
		t.Errorf("GetConfigDir() = %v, should contain 'sinclair-decoder'", configDir)
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and other Unix systems")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	want := filepath.Join(dir, "sinclair-decoder", "config.yaml")
	if configPath != want {
		t.Errorf("GetConfigPath() = %v, want %v", configPath, want)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %v, want text", cfg.Output.Format)
	}
	if cfg.Decode.Policy != "fallback" {
		t.Errorf("Decode.Policy = %v, want fallback", cfg.Decode.Policy)
	}
	if !cfg.Decode.Labels {
		t.Error("Decode.Labels should be true by default")
	}
	if cfg.Logging.Level != "" {
		t.Errorf("Logging.Level = %q, want silent", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "json upper case", mutate: func(c *Config) { c.Output.Format = "JSON" }},
		{name: "bad format", mutate: func(c *Config) { c.Output.Format = "xml" }, wantErr: "output.format"},
		{name: "negative columns", mutate: func(c *Config) { c.Output.PayloadColumns = -1 }, wantErr: "payload_columns"},
		{name: "bad policy", mutate: func(c *Config) { c.Decode.Policy = "guess" }, wantErr: "decode.policy"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "negative backups", mutate: func(c *Config) { c.Logging.File.MaxBackups = -2 }, wantErr: "logging.file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if *cfg != *DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `output:
  format: json
  payload_columns: 16
decode:
  policy: extract
  labels: false
logging:
  level: debug
  file:
    filename: /tmp/decoder.log
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %v, want json", cfg.Output.Format)
	}
	if cfg.Output.PayloadColumns != 16 {
		t.Errorf("Output.PayloadColumns = %v, want 16", cfg.Output.PayloadColumns)
	}
	if cfg.Decode.Policy != "extract" {
		t.Errorf("Decode.Policy = %v, want extract", cfg.Decode.Policy)
	}
	if cfg.Decode.Labels {
		t.Error("Decode.Labels should be false")
	}
	if cfg.Logging.File.Filename != "/tmp/decoder.log" {
		t.Errorf("Logging.File.Filename = %v", cfg.Logging.File.Filename)
	}
	// Keys absent from the file keep their defaults
	if cfg.Logging.File.MaxBackups != 3 {
		t.Errorf("Logging.File.MaxBackups = %v, want 3", cfg.Logging.File.MaxBackups)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: json\n"), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("SINCLAIR_OUTPUT_FORMAT", "yaml")
	t.Setenv("SINCLAIR_DECODE_LABELS", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %v, want yaml from environment", cfg.Output.Format)
	}
	if cfg.Decode.Labels {
		t.Error("Decode.Labels should be false from environment")
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("decode:\n  policy: guess\n"), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an unknown policy")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Output.Format = "detailed"
	cfg.Output.ShowRaw = true
	cfg.Decode.Policy = "direct"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Sinclair Decoder Configuration File") {
		t.Error("Saved config should start with the header comment")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Temporary file should not remain after Save()")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}
}

func TestYAML(t *testing.T) {
	out, err := DefaultConfig().YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}
	for _, key := range []string{"output:", "format: text", "policy: fallback", "max_size: 10"} {
		if !strings.Contains(out, key) {
			t.Errorf("YAML() missing %q:\n%s", key, out)
		}
	}
}
