package main

// Config is read from the environment (and ./.env when present).
type Config struct {
	AcceptGeneric bool   `env:"VALIDACION_ACCEPT_GENERIC" envDefault:"true"`
	Lang          string `env:"VALIDACION_LANG" envDefault:"es"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text"`
}
