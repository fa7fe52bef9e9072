package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SourceRemotive struct {
	Enabled     bool   `yaml:"enabled"`
	Search      string `yaml:"search"`
	AuthAccount string `yaml:"auth_account"` // keychain account holding an API token, optional
}

type SourceRemoteOK struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Collect struct {
		TimeoutSeconds int            `yaml:"timeout_seconds"`
		RequestsPerSec float64        `yaml:"requests_per_sec"`
		Burst          int            `yaml:"burst"`
		Remotive       SourceRemotive `yaml:"remotive"`
		RemoteOK       SourceRemoteOK `yaml:"remoteok"`
	} `yaml:"collect"`

	Lexicon struct {
		Path string `yaml:"path"`
	} `yaml:"lexicon"`

	Export struct {
		JSON string `yaml:"json"`
		CSV  string `yaml:"csv"`
	} `yaml:"export"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
