// Package config declares the command line interface of formgen.
package config

import "github.com/Alia5/formgen/internal/cmd"

// CLI is the root kong command. Values come from flags, FORMGEN_* environment
// variables and config files, in that priority order.
type CLI struct {
	Config string `name:"config" help:"Path to a config file (json, yaml or toml)" env:"FORMGEN_CONFIG" type:"path"`
	Log    Log    `embed:"" prefix:"log."`

	Generate cmd.Generate      `cmd:"" help:"Generate TypeScript form templates from entity definitions"`
	Check    cmd.Check         `cmd:"" help:"Verify that generated form templates are up to date"`
	Setup    cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
	Version  cmd.Version       `cmd:"" help:"Print the formgen version"`
}

// Log configures logging.
type Log struct {
	Level   string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"FORMGEN_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" env:"FORMGEN_LOG_FILE"`
	Format  string `help:"Console log format" default:"auto" enum:"auto,text,json" env:"FORMGEN_LOG_FORMAT"`
	RawFile string `help:"Dump unformatted generated sources to this file" env:"FORMGEN_LOG_RAW_FILE"`
}
