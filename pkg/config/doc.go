// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// optional .env files are loaded into the environment first, then the
// environment is parsed into any struct annotated with env tags.
//
//	type Config struct {
//	    AcceptGeneric bool   `env:"VALIDACION_ACCEPT_GENERIC" envDefault:"true"`
//	    LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Load caches one copy per struct type for the life of the process; Parse
// always reads the environment again. ResetCache clears the cache in tests.
package config
