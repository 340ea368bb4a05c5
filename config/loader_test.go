package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// clearEnv keeps the caller's environment out of the result
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MRT_STATIONS_CSV", "")
	t.Setenv("PORT", "")
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("empty config = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.Network.AverageSpeedKMH != 40 || cfg.Network.TransferMinutes != 3 || cfg.Network.EarthRadiusKM != 6371 {
		t.Errorf("unexpected network defaults %+v", cfg.Network)
	}
	if !reflect.DeepEqual(cfg.Network.LoopLines, []string{"CC"}) {
		t.Errorf("loop lines = %v", cfg.Network.LoopLines)
	}
}

func TestParse_Overrides(t *testing.T) {
	clearEnv(t)
	data := []byte(`
server:
  port: 9000
network:
  averageSpeedKMH: 35.5
  transferMinutes: 0
  loopLines: [CC, CE]
  edgeConflict: min
cache:
  size: 0
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Network.AverageSpeedKMH != 35.5 || cfg.Network.TransferMinutes != 0 {
		t.Errorf("network = %+v", cfg.Network)
	}
	if !reflect.DeepEqual(cfg.Network.LoopLines, []string{"CC", "CE"}) {
		t.Errorf("loop lines = %v", cfg.Network.LoopLines)
	}
	if cfg.Network.EdgeConflict != "min" {
		t.Errorf("edge conflict = %q", cfg.Network.EdgeConflict)
	}
	if cfg.Network.EarthRadiusKM != 6371 || cfg.Network.CodeSeparator != "/" {
		t.Errorf("unset fields should keep defaults: %+v", cfg.Network)
	}
	if cfg.Cache.Size != 0 {
		t.Errorf("cache size = %d", cfg.Cache.Size)
	}
}

func TestParse_Invalid(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "broken yaml", data: "invalid: yaml: content: [[[", wantErr: "decode config"},
		{name: "zero speed", data: "network:\n  averageSpeedKMH: 0\n", wantErr: "AverageSpeedKMH"},
		{name: "negative transfer", data: "network:\n  transferMinutes: -1\n", wantErr: "TransferMinutes"},
		{name: "unknown conflict policy", data: "network:\n  edgeConflict: merge\n", wantErr: "EdgeConflict"},
		{name: "lowercase loop line", data: "network:\n  loopLines: [cc]\n", wantErr: "LoopLines"},
		{name: "empty separator", data: "network:\n  codeSeparator: \"\"\n", wantErr: "CodeSeparator"},
		{name: "port out of range", data: "server:\n  port: 70000\n", wantErr: "Port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("MRT_STATIONS_CSV", "/data/stations.csv")
	t.Setenv("PORT", "8081")

	cfg, err := Parse([]byte("server:\n  port: 9000\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Stations.Path != "/data/stations.csv" {
		t.Errorf("stations path = %q", cfg.Stations.Path)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("port = %d, want 8081", cfg.Server.Port)
	}

	t.Setenv("PORT", "eighty")
	if _, err := Parse(nil); err == nil {
		t.Error("expected error for non-numeric PORT")
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("stations:\n  path: lines.csv\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Stations.Path != "lines.csv" {
		t.Errorf("stations path = %q", cfg.Stations.Path)
	}

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestLoadAppConfig_MissingFile checks that defaults apply when no config.yml exists
func TestLoadAppConfig_MissingFile(t *testing.T) {
	clearEnv(t)
	origConfig := Config
	origDir, _ := os.Getwd()
	defer func() {
		Config = origConfig
		os.Chdir(origDir)
	}()

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if Config.Server.Port != 16181 {
		t.Errorf("port = %d, want default 16181", Config.Server.Port)
	}
}

// TestLoadAppConfig_RepoConfig loads the config.yml shipped at the repository root
func TestLoadAppConfig_RepoConfig(t *testing.T) {
	clearEnv(t)
	origConfig := Config
	origDir, _ := os.Getwd()
	defer func() {
		Config = origConfig
		os.Chdir(origDir)
	}()

	if err := os.Chdir(".."); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("Failed to load config.yml: %v", err)
	}
	if Config.Stations.Path == "" {
		t.Error("config should name a station dataset")
	}

	t.Logf("✓ Loaded config with stations: %s", Config.Stations.Path)
}
