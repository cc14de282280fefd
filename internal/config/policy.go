package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// LoadPolicy reads the policy file named by POLICY_CONFIG_PATH (default
// configs/policy.yaml). A missing file is not an error: the built-in
// defaults apply.
func LoadPolicy() (*Policy, error) {
	path := os.Getenv("POLICY_CONFIG_PATH")
	if path == "" {
		path = "configs/policy.yaml"
	}

	var cfg Policy

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&cfg)
			return &cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Policy) {
	if cfg.Audit.Stream == "" {
		cfg.Audit.Stream = "ddev-mcp:audit"
	}
	if cfg.Command.TimeoutSeconds == 0 {
		cfg.Command.TimeoutSeconds = 60
	}
}

func (p *Policy) Validate() error {
	for _, pattern := range p.Security.ExtraDenyPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("security.extra_deny_patterns: invalid pattern %q: %w", pattern, err)
		}
	}
	if p.Command.TimeoutSeconds < 0 {
		return fmt.Errorf("command.timeout_seconds must not be negative")
	}
	return nil
}
