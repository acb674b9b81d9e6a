package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults match the original fixed constants; config.yaml overrides them.
const (
	DefaultAPIPort     = "5000"
	DefaultWebPort     = "8080"
	DefaultUsername    = "toto"
	DefaultPassword    = "python"
	DefaultDataFile    = "data/student_age.json"
	DefaultStudentsURL = "http://localhost:5000/pozos/api/v1.0/get_student_ages"
)

// APIConfig configures the data service.
type APIConfig struct {
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DataFile string `yaml:"data_file"`
}

// WebsiteConfig configures the presentation client.
type WebsiteConfig struct {
	Port     string `yaml:"port"`
	APIURL   string `yaml:"api_url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Config is the root of config.yaml.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Website WebsiteConfig `yaml:"website"`
}

// Load reads the yaml config at path and fills in defaults for any field left
// empty. A missing file is not an error: every value has a working default.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.Port == "" {
		c.API.Port = DefaultAPIPort
	}
	if c.API.Username == "" {
		c.API.Username = DefaultUsername
	}
	if c.API.Password == "" {
		c.API.Password = DefaultPassword
	}
	if c.API.DataFile == "" {
		c.API.DataFile = DefaultDataFile
	}
	if c.Website.Port == "" {
		c.Website.Port = DefaultWebPort
	}
	if c.Website.APIURL == "" {
		c.Website.APIURL = DefaultStudentsURL
	}
	if c.Website.Username == "" {
		c.Website.Username = DefaultUsername
	}
	if c.Website.Password == "" {
		c.Website.Password = DefaultPassword
	}
}
