package config

import (
	"io"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logging"
)

// Config is the environment based configuration of the enumerators CLI.
type Config struct {
	LogLevel string `env:"ENUMERATORS_LOG_LEVEL" enum:"debug;info;warn;error;fatal;" default:"info"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Logger creates the application logger.
// Out should not be STDOUT, that is where the results are written.
func (c Config) Logger(out io.Writer) *logging.Logger {
	return &logging.Logger{
		Out:   out,
		Level: logging.Level(c.LogLevel),
	}
}
