// Command zugzwang is the UCI-facing shell around the zugzwang chess core:
// a standard UCI loop plus a perft subcommand for move-generator debugging.
package main

import (
	"flag"
	"os"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "perft" {
		cfg := defaultConfig()
		initLogging(cfg.Engine.LogLevel)
		runPerft(os.Args[2:])
		return
	}

	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()
	cfg, err := loadConfig(*configPath)
	if err != nil {
		panic(err)
	}
	initLogging(cfg.Engine.LogLevel)
	runUCI(cfg)
}
