package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultPath is the config filename looked up in the working directory
// when no explicit path is given.
const DefaultPath = "networks.json"

// Network names follow the CAIP-2 eip155 form, e.g. "eip155:1".
var networkNamePattern = regexp.MustCompile(`^eip155:[0-9]+$`)

// Network describes a chain the daemon knows about. The set is fixed for
// the daemon's lifetime.
type Network struct {
	Name   string `json:"name"`
	RPCURL string `json:"rpcUrl"`
}

// ChainID returns the numeric chain id embedded in the network name.
// Validate guarantees the name parses.
func (n Network) ChainID() uint64 {
	id, _ := strconv.ParseUint(strings.TrimPrefix(n.Name, "eip155:"), 10, 64)
	return id
}

type DaemonConfig struct {
	Host string `json:"host" env:"WALLETD_DAEMON_HOST"`
	Port int    `json:"port" env:"WALLETD_DAEMON_PORT"`
}

type Config struct {
	Networks []Network    `json:"networks"`
	Daemon   DaemonConfig `json:"daemon"`
	LogLevel string       `json:"log_level" env:"WALLETD_LOG_LEVEL"`
}

func DefaultConfig() *Config {
	return &Config{
		Networks: []Network{
			{Name: "eip155:1", RPCURL: "https://eth.llamarpc.com"},
			{Name: "eip155:137", RPCURL: "https://polygon-rpc.com"},
		},
		Daemon: DaemonConfig{
			Host: "127.0.0.1",
			Port: 18890,
		},
		LogLevel: "info",
	}
}

// LoadConfig reads the config file at path, falling back to defaults when
// the file does not exist, then applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0o600)
}

func (c *Config) Validate() error {
	if len(c.Networks) == 0 {
		return fmt.Errorf("at least one network is required")
	}

	seen := make(map[string]bool, len(c.Networks))
	for i, n := range c.Networks {
		if !networkNamePattern.MatchString(n.Name) {
			return fmt.Errorf("networks[%d]: name %q must match eip155:<chain-id>", i, n.Name)
		}
		if n.RPCURL == "" {
			return fmt.Errorf("networks[%d]: rpcUrl is required", i)
		}
		if seen[n.Name] {
			return fmt.Errorf("networks[%d]: duplicate network %q", i, n.Name)
		}
		seen[n.Name] = true
	}

	if c.Daemon.Port <= 0 || c.Daemon.Port > 65535 {
		return fmt.Errorf("daemon.port %d out of range", c.Daemon.Port)
	}

	return nil
}

// ListenAddr is the address the daemon binds. The daemon is loopback-only.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Daemon.Host, c.Daemon.Port)
}

// BaseURL is the URL clients use to reach the daemon.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Daemon.Host, c.Daemon.Port)
}
