package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
)

type AddCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewAddCommand(stdout, stderr io.Writer, newClient clientFactory) *AddCommand {
	return &AddCommand{stdout: stdout, stderr: stderr, newClient: newClient}
}

func (c *AddCommand) Run(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	title := fs.String("title", "", "note title (required)")
	content := fs.String("content", "", "note content")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" {
		return errors.New("--title is required")
	}

	client, err := c.newClient()
	if err != nil {
		return err
	}
	note, err := client.CreateNote(context.Background(), *title, *content)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.stdout, note.ID)
	return nil
}
