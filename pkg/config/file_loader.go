package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/guardkit/guardkit/pkg/guard"
)

// LoadFromFile populates the configuration struct from a YAML document and
// then applies environment variables on top, so deployments can override
// file defaults without editing the file. Results are not cached; each call
// re-reads the file.
//
// Example:
//
//	type ServerConfig struct {
//		Addr string `yaml:"addr" env:"SERVER_ADDR"`
//		Port int    `yaml:"port" env:"SERVER_PORT"`
//	}
//
//	var cfg ServerConfig
//	if err := config.LoadFromFile("config.yaml", &cfg); err != nil {
//		// Handle error
//	}
func LoadFromFile[T any](path string, v *T) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	if _, err := guard.NotNil(v, "v"); err != nil {
		return errors.Join(ErrNilPointer, err)
	}
	if _, err := guard.NotNilNotEmpty(&path, "path"); err != nil {
		return errors.Join(ErrReadingFile, err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		return errors.Join(ErrParsingFile, err)
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoadFromFile works like LoadFromFile but panics if loading fails.
func MustLoadFromFile[T any](path string, v *T) {
	if err := LoadFromFile(path, v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration from %s: %v", path, err))
	}
}
