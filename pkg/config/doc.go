// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables and YAML files.
//
// It wraps `github.com/joho/godotenv`, `github.com/caarlos0/env/v11` and
// `gopkg.in/yaml.v3` to deliver a convenient API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Populates structs from YAML documents with environment overrides applied
//     on top (LoadFromFile).
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process.
//   - Exposes helpers that panic on failure (MustLoadEnv, MustLoad,
//     MustLoadFromFile) for configuration the application cannot start without.
//   - Allows explicit cache reset or force reload which is handy in tests.
//
// # Architecture
//
// Internally the package keeps a singleton configCache that stores parsed
// struct copies keyed by their fully-qualified type name. Each key also holds
// a sync.Once instance guaranteeing the expensive parsing work is executed at
// most once per configuration type even when accessed from multiple
// goroutines concurrently.
//
// The exported helpers interact with the cache in a thread-safe manner using
// sync.RWMutex, while low-level parsing is delegated to env.Parse and
// yaml.Unmarshal. Target and path contracts are enforced with the guard
// package, so a nil destination fails before any parsing happens.
//
// # Usage
//
// First, create a struct describing your configuration and annotate its
// fields with `env` tags:
//
//	type DatabaseConfig struct {
//	    Host string `env:"DB_HOST,required"`
//	    Port int    `env:"DB_PORT" envDefault:"5432"`
//	    User string `env:"DB_USER,required"`
//	    Pass string `env:"DB_PASS,required"`
//	}
//
// Load the default `.env` file (optional) then populate the struct:
//
//	import "github.com/guardkit/guardkit/pkg/config"
//
//	func main() {
//	    // Optionally load one or many custom .env files before parsing.
//	    if err := config.LoadEnv("./config/.env" /* more files ... */); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    var db DatabaseConfig
//	    if err := config.Load(&db); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//
//	    // db is now populated and cached for future calls.
//	}
//
// Subsequent calls to config.Load(&db) will be served from the in-memory
// cache without re-parsing. File-based configuration works the same way with
// an additional `yaml` tag per field:
//
//	type ServerConfig struct {
//	    Addr string `yaml:"addr" env:"SERVER_ADDR"`
//	}
//
//	var srv ServerConfig
//	if err := config.LoadFromFile("config.yaml", &srv); err != nil {
//	    log.Fatalf("loading config file: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with errors.Is:
//
//   - ErrParsingConfig: failed to parse env vars into struct.
//   - ErrConfigNotLoaded: requested config type has not been loaded yet.
//   - ErrNilPointer: nil pointer passed to Load/MustLoad.
//   - ErrLoadingEnvFile: an .env file could not be loaded.
//   - ErrReadingFile / ErrParsingFile: config file access or YAML failures.
//
// # Testing Helpers
//
// Use ResetCache() to clear the global cache between tests or
// ForceReloadConfig(&cfg) to reload a particular struct after the process
// environment changes.
package config
