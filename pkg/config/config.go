package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/anrid/malaria-stats/pkg/stats"
)

// Config is the process configuration. Precedence, lowest first: defaults,
// YAML file, environment, command line flags.
type Config struct {
	Addr      string  `yaml:"addr"`
	DataDir   string  `yaml:"data_dir"`
	Reference string  `yaml:"reference"`
	Samples   Samples `yaml:"samples"`
	LogLevel  string  `yaml:"log_level"`
	LogFormat string  `yaml:"log_format"`
}

// Samples are the bundled sample files, relative to DataDir.
type Samples struct {
	Deaths      string `yaml:"deaths"`
	Incidence   string `yaml:"incidence"`
	DeathsByAge string `yaml:"deaths_by_age"`
}

// Map keys the sample files by subject name.
func (s Samples) Map() map[string]string {
	return map[string]string{
		stats.Deaths.Name:      s.Deaths,
		stats.Incidence.Name:   s.Incidence,
		stats.DeathsByAge.Name: s.DeathsByAge,
	}
}

// Default mirrors the layout of the bundled data directory.
func Default() Config {
	return Config{
		Addr:      ":8080",
		DataDir:   "./data",
		Reference: "additional/continents2.csv",
		Samples: Samples{
			Deaths:      "malaria_deaths.txt",
			Incidence:   "malaria_inc.txt",
			DeathsByAge: "malaria_deaths_age.txt",
		},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MALARIA_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("MALARIA_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("MALARIA_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("MALARIA_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}

// OpenDatabase loads the reference table and sample locations.
func (c Config) OpenDatabase() (*stats.Database, error) {
	return stats.Open(c.DataDir, c.Reference, c.Samples.Map())
}
