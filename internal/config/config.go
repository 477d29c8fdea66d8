package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seedbatch-dev/seedbatch/internal/export"
	"github.com/seedbatch-dev/seedbatch/internal/seeds"
)

// FileName is the config file at the workspace root.
const FileName = "seeds.yaml"

// Config represents the top-level seeds.yaml configuration.
type Config struct {
	Transfer TransferConfig `yaml:"transfer"`
	Export   ExportConfig   `yaml:"export"`
	Git      GitConfig      `yaml:"git"`
}

// TransferConfig holds the constant columns of every record.
type TransferConfig struct {
	Type         string `yaml:"type"`
	DebitAccount string `yaml:"debit_account"`
	Currency     string `yaml:"currency"`
}

// ExportConfig controls workbook naming and placement.
type ExportConfig struct {
	Prefix string `yaml:"prefix"`
	Dir    string `yaml:"dir"` // relative to the workspace
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a seeds.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config for a new workspace. An empty debitAccount keeps
// the built-in one.
func Default(debitAccount string) *Config {
	d := seeds.DefaultDefaults()
	if debitAccount != "" {
		d.DebitAccount = debitAccount
	}
	return &Config{
		Transfer: TransferConfig{
			Type:         d.TransferType,
			DebitAccount: d.DebitAccount,
			Currency:     d.Currency,
		},
		Export: ExportConfig{
			Prefix: export.DefaultPrefix,
			Dir:    "exports",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Seed Batch",
			AuthorEmail: "seedbatch@localhost",
		},
	}
}

// Defaults returns the parser defaults described by the transfer section.
func (c *Config) Defaults() seeds.Defaults {
	return seeds.Defaults{
		TransferType: c.Transfer.Type,
		DebitAccount: c.Transfer.DebitAccount,
		Currency:     c.Transfer.Currency,
	}
}
