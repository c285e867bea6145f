package main

import (
	"context"

	"notable/internal/app"
	notesclient "notable/internal/client"
	"notable/internal/config"
	"notable/internal/types"
)

type clientFactory func() (commandClient, error)

type commandClient interface {
	ListNotes(ctx context.Context) ([]types.Note, error)
	CreateNote(ctx context.Context, title, content string) (types.Note, error)
	DeleteNote(ctx context.Context, id string) error
	RunUI() error
}

type notesClientAdapter struct {
	client *notesclient.Client
}

func newNotesClient() (commandClient, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	client, err := notesclient.New(notesclient.Config{BaseURL: settings.ResolveBaseURL()})
	if err != nil {
		return nil, err
	}
	return &notesClientAdapter{client: client}, nil
}

func (c *notesClientAdapter) ListNotes(ctx context.Context) ([]types.Note, error) {
	return c.client.ListNotes(ctx)
}

func (c *notesClientAdapter) CreateNote(ctx context.Context, title, content string) (types.Note, error) {
	return c.client.CreateNote(ctx, title, content)
}

func (c *notesClientAdapter) DeleteNote(ctx context.Context, id string) error {
	return c.client.DeleteNote(ctx, id)
}

func (c *notesClientAdapter) RunUI() error {
	return app.Run(c.client)
}
