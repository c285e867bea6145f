package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const usageText = `notable is a terminal notes manager.

Usage:
  notable <command> [flags]

Commands:
  ui       run the terminal UI (default)
  serve    run the local notes server
  ls       list notes
  add      create a note
  rm       delete a note
  config   print configuration (effective or defaults)
  help     show help

Flags:
  -h, --help   show help

Serve flags:
  --addr      listen address (default from config)
  --driver    storage driver: bolt or files
  --path      storage location override

Examples:
  notable ui
  notable serve --addr 127.0.0.1:8484
  notable add --title "Groceries" --content "milk, eggs"
  notable rm <id>
  notable config --format toml
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	_ = godotenv.Load()

	args := os.Args[1:]
	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	if len(args) == 0 {
		exitOnErr("ui", commands["ui"].Run(nil), wiring.stderr)
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
