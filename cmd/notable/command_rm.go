package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
)

type RMCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewRMCommand(stdout, stderr io.Writer, newClient clientFactory) *RMCommand {
	return &RMCommand{stdout: stdout, stderr: stderr, newClient: newClient}
}

func (c *RMCommand) Run(args []string) error {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	ids := fs.Args()
	if len(ids) == 0 {
		return errors.New("usage: notable rm <id> [<id>...]")
	}

	client, err := c.newClient()
	if err != nil {
		return err
	}
	ctx := context.Background()
	for _, id := range ids {
		if err := client.DeleteNote(ctx, id); err != nil {
			return fmt.Errorf("delete %s: %w", id, err)
		}
		fmt.Fprintln(c.stdout, id)
	}
	return nil
}
