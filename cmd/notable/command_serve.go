package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"notable/internal/config"
	"notable/internal/server"
	"notable/internal/store"
)

type serverRunner func(addr, driver, path string) error

type ServeCommand struct {
	stderr    io.Writer
	runServer serverRunner
}

func NewServeCommand(stderr io.Writer, runServer serverRunner) *ServeCommand {
	return &ServeCommand{stderr: stderr, runServer: runServer}
}

func (c *ServeCommand) Run(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	addr := fs.String("addr", "", "listen address")
	driver := fs.String("driver", "", "storage driver: bolt or files")
	path := fs.String("path", "", "storage location override")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.runServer(*addr, *driver, *path)
}

func runNotesServer(addr, driver, path string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = settings.ServerAddr()
	}
	if driver == "" {
		driver = settings.StorageDriver()
	}
	if path == "" {
		path, err = settings.StoragePath()
		if err != nil {
			return err
		}
	}

	level, err := zerolog.ParseLevel(settings.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	notes, err := openNoteStore(driver, path, log)
	if err != nil {
		return err
	}
	defer func() { _ = notes.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(addr, buildVersion(), notes, log).Run(ctx)
}

func openNoteStore(driver, path string, log zerolog.Logger) (store.NoteStore, error) {
	switch driver {
	case "bolt":
		return store.NewBoltNoteStore(path)
	case "files":
		return store.NewFileNoteStore(path, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
