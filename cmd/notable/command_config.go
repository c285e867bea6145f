package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"

	"notable/internal/config"
)

type ConfigCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewConfigCommand(stdout, stderr io.Writer) *ConfigCommand {
	return &ConfigCommand{stdout: stdout, stderr: stderr}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("default", false, "print built-in defaults instead of the effective configuration")
	format := fs.String("format", "toml", "output format: toml or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings := config.DefaultSettings()
	if !*defaults {
		loaded, err := config.LoadSettings()
		if err != nil {
			return err
		}
		settings = loaded
	}

	switch *format {
	case "toml":
		data, err := toml.Marshal(settings)
		if err != nil {
			return err
		}
		_, err = c.stdout.Write(data)
		return err
	case "json":
		encoder := json.NewEncoder(c.stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(settings)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}
