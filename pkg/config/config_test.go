package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "networks.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Networks) == 0 {
		t.Fatal("default networks empty")
	}
	if cfg.Networks[0].Name != "eip155:1" {
		t.Errorf("networks[0] = %+v", cfg.Networks[0])
	}
	if cfg.Daemon.Host != "127.0.0.1" || cfg.Daemon.Port != 18890 {
		t.Errorf("daemon defaults = %+v", cfg.Daemon)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"networks": [
			{"name": "eip155:10", "rpcUrl": "https://rpc.example/op"},
			{"name": "eip155:8453", "rpcUrl": "https://rpc.example/base"}
		],
		"daemon": {"host": "127.0.0.1", "port": 19000}
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Networks) != 2 {
		t.Fatalf("networks len = %d, want 2", len(cfg.Networks))
	}
	if cfg.Networks[0].Name != "eip155:10" || cfg.Networks[1].RPCURL != "https://rpc.example/base" {
		t.Errorf("networks = %+v", cfg.Networks)
	}
	if cfg.Daemon.Port != 19000 {
		t.Errorf("port = %d, want 19000", cfg.Daemon.Port)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("WALLETD_DAEMON_PORT", "20123")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Daemon.Port != 20123 {
		t.Errorf("port = %d, want env override 20123", cfg.Daemon.Port)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"networks": [`},
		{"bad network name", `{"networks": [{"name": "mainnet", "rpcUrl": "https://x"}]}`},
		{"missing rpc url", `{"networks": [{"name": "eip155:1", "rpcUrl": ""}]}`},
		{"duplicate network", `{"networks": [
			{"name": "eip155:1", "rpcUrl": "https://a"},
			{"name": "eip155:1", "rpcUrl": "https://b"}
		]}`},
		{"empty networks", `{"networks": []}`},
		{"bad port", `{"networks": [{"name": "eip155:1", "rpcUrl": "https://a"}], "daemon": {"host": "127.0.0.1", "port": 99999}}`},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNetwork_ChainID(t *testing.T) {
	if got := (Network{Name: "eip155:137"}).ChainID(); got != 137 {
		t.Errorf("ChainID = %d, want 137", got)
	}
	if got := (Network{Name: "eip155:1"}).ChainID(); got != 1 {
		t.Errorf("ChainID = %d, want 1", got)
	}
}

func TestConfig_Addresses(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ListenAddr(); got != "127.0.0.1:18890" {
		t.Errorf("ListenAddr = %q", got)
	}
	if got := cfg.BaseURL(); got != "http://127.0.0.1:18890" {
		t.Errorf("BaseURL = %q", got)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "networks.json")
	cfg := DefaultConfig()
	cfg.Daemon.Port = 19555

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Daemon.Port != 19555 {
		t.Errorf("port = %d, want 19555", loaded.Daemon.Port)
	}
}
