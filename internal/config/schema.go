package config

// Policy is the optional YAML policy file. Everything in it has a working
// default, so a deployment without the file runs with the built-in rules.
type Policy struct {
	Security SecurityConfig `yaml:"security"`
	Audit    AuditConfig    `yaml:"audit"`
	Command  CommandConfig  `yaml:"command"`
}

// SecurityConfig tunes the query classifier.
type SecurityConfig struct {
	// AllowWriteDefault is the write-mode default used when a caller does
	// not pass the flag explicitly. Catastrophic rules apply regardless.
	AllowWriteDefault bool `yaml:"allow_write_default"`

	// ExtraDenyPatterns are regular expressions appended to the
	// catastrophic table. They are matched against the normalized
	// (upper-cased) statement.
	ExtraDenyPatterns []string `yaml:"extra_deny_patterns"`

	// DirectPostgres enables the direct-connection path for postgres
	// projects that publish a host port.
	DirectPostgres bool `yaml:"direct_postgres"`
}

// AuditConfig names the Redis stream audit events are appended to.
type AuditConfig struct {
	Stream string `yaml:"stream"`
}

// CommandConfig bounds manager CLI invocations.
type CommandConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}
