package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// config holds the startup options the engine binary reads from an
// optional TOML file alongside its flags. Fields are intentionally sparse;
// the core takes no configuration of its own.
type config struct {
	Engine struct {
		DefaultDepth int    `toml:"default_depth"`
		LogLevel     string `toml:"log_level"`
	} `toml:"engine"`
}

func defaultConfig() config {
	var c config
	c.Engine.DefaultDepth = 6
	c.Engine.LogLevel = "INFO"
	return c
}

// loadConfig reads path if it exists, falling back to defaults (and no
// error) when the file is absent -- the binary is meant to run with zero
// setup.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c, nil
	}
	_, err := toml.DecodeFile(path, &c)
	return c, err
}
