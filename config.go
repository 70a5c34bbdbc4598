package chromez

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is the environment-driven setup for the default tracer. Fields
// are read with the "trace" prefix: TRACE_FILE, TRACE_ENABLED,
// TRACE_PROCESS_NAME.
type Config struct {
	File        string `envconfig:"FILE"`
	Enabled     bool   `envconfig:"ENABLED" default:"true"`
	ProcessName string `envconfig:"PROCESS_NAME"`
}

// ReadConfig reads tracing configuration from the environment.
func ReadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process("trace", &c); err != nil {
		return Config{}, errors.Wrap(err, "chromez: read environment")
	}
	return c, nil
}

// OpenFromEnv opens the default trace file named by TRACE_FILE. When
// TRACE_FILE is unset or TRACE_ENABLED is false it does nothing and
// returns nil, so hosts can call it unconditionally at startup:
//
//	if err := chromez.OpenFromEnv(); err != nil {
//		log.Fatal(err)
//	}
//	defer chromez.Close()
func OpenFromEnv() error {
	cfg, err := ReadConfig()
	if err != nil {
		return err
	}
	if cfg.File == "" || !cfg.Enabled {
		return nil
	}
	if cfg.ProcessName != "" {
		std.SetProcessName(cfg.ProcessName)
	}
	return std.Open(cfg.File)
}
