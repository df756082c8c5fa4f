package main

import (
	"fmt"
	"os"

	"rigid-engine/internal/commands"
	"rigid-engine/internal/engineconfig"
	"rigid-engine/internal/env"
	"rigid-engine/internal/logger"
)

func main() {
	reg := commands.NewRegistry()
	registerCommands(reg)

	if len(os.Args) < 2 {
		reg.Usage(os.Stderr)
		os.Exit(2)
	}
	if err := reg.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "sim:", err)
		os.Exit(1)
	}
}

// loadPrefs reads the config file, then applies RIGID_* variables from .env and the environment.
func loadPrefs(path string) (engineconfig.SimPrefs, error) {
	prefs, err := engineconfig.Load(path)
	if err != nil {
		return prefs, err
	}
	vars, err := env.Collect(".env", env.Prefix)
	if err != nil {
		return prefs, err
	}
	prefs, err = engineconfig.ApplyOverrides(prefs, vars)
	if err != nil {
		return prefs, err
	}
	return prefs, prefs.Validate()
}

func newLogger(prefs engineconfig.SimPrefs) *logger.Logger {
	return logger.New(prefs.LogPath)
}
