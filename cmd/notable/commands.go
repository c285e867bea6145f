package main

import (
	"io"
	"os"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
	runServer serverRunner
	version   string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newNotesClient,
		runServer: runNotesServer,
		version:   buildVersion(),
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"ui":     NewUICommand(wiring.stderr, wiring.newClient),
		"serve":  NewServeCommand(wiring.stderr, wiring.runServer),
		"ls":     NewLSCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"add":    NewAddCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"rm":     NewRMCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"config": NewConfigCommand(wiring.stdout, wiring.stderr),
	}
}
