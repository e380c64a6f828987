package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type ConfigSchema struct {
	API struct {
		URL string `yaml:"url"`
	} `yaml:"api"`
	Session struct {
		Path string `yaml:"path"`
	} `yaml:"session"`
	Devserver struct {
		Addr      string `yaml:"addr"`
		Database  string `yaml:"database"`
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"devserver"`
}

var AppConfig ConfigSchema

func LoadConfig(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, &AppConfig); err != nil {
		return err
	}
	applyEnvOverrides()
	return nil
}

// LoadDefaults fills the config without a file, for setups that configure
// everything through the environment.
func LoadDefaults() {
	AppConfig = ConfigSchema{}
	AppConfig.API.URL = "http://localhost:5000"
	AppConfig.Devserver.Addr = ":5000"
	AppConfig.Devserver.Database = "blogsy_dev.db"
	AppConfig.Devserver.JWTSecret = "dev-only-secret"
	applyEnvOverrides()
}

func applyEnvOverrides() {
	if v := os.Getenv("BLOGSY_API_URL"); v != "" {
		AppConfig.API.URL = v
	}
	if v := os.Getenv("BLOGSY_SESSION_PATH"); v != "" {
		AppConfig.Session.Path = v
	}
	if v := os.Getenv("BLOGSY_JWT_SECRET"); v != "" {
		AppConfig.Devserver.JWTSecret = v
	}
}
