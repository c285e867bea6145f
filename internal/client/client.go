package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"notable/internal/types"
)

// ErrNotConfigured is returned before any network attempt when no remote
// base URL has been supplied.
var ErrNotConfigured = errors.New("no notes API base URL configured (set api.base_url or backend.url)")

const defaultTimeout = 10 * time.Second

// Config carries everything the client needs; the base URL is passed in
// explicitly rather than read from the environment so tests can supply
// arbitrary bases.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zerolog.Logger
}

// Client is the sole boundary between the UI and the remote notes store. It
// hides response-shape variance behind the canonical Note type.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, ErrNotConfigured
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListNotes fetches all notes. Elements whose id is empty after
// normalization are dropped; they cannot be addressed for further calls.
func (c *Client) ListNotes(ctx context.Context) ([]types.Note, error) {
	var payload any
	if err := c.doJSON(ctx, http.MethodGet, "/notes", nil, &payload); err != nil {
		return nil, err
	}
	raw := extractNoteList(payload)
	notes := make([]types.Note, 0, len(raw))
	for _, item := range raw {
		note := normalizeNote(item)
		if note.ID == "" {
			continue
		}
		notes = append(notes, note)
	}
	c.log.Debug().Int("count", len(notes)).Msg("listed notes")
	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context, title, content string) (types.Note, error) {
	var payload any
	body := noteBody{Title: title, Content: content}
	if err := c.doJSON(ctx, http.MethodPost, "/notes", body, &payload); err != nil {
		return types.Note{}, err
	}
	note := normalizeNote(extractNoteObject(payload))
	if note.ID == "" {
		return types.Note{}, &APIError{Message: "server returned an unusable note payload"}
	}
	c.log.Debug().Str("id", note.ID).Msg("created note")
	return note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id, title, content string) (types.Note, error) {
	var payload any
	body := noteBody{Title: title, Content: content}
	if err := c.doJSON(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), body, &payload); err != nil {
		return types.Note{}, err
	}
	note := normalizeNote(extractNoteObject(payload))
	if note.ID == "" {
		return types.Note{}, &APIError{Message: "server returned an unusable note payload"}
	}
	c.log.Debug().Str("id", note.ID).Msg("updated note")
	return note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}
	c.log.Debug().Str("id", id).Msg("deleted note")
	return nil
}

type noteBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeAPIError extracts a human-readable message from a non-2xx response:
// JSON bodies yield their message or error field, anything else is used as
// plain text, and an empty body falls back to a generic message with the
// numeric status.
func decodeAPIError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	apiErr := &APIError{StatusCode: resp.StatusCode}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(contentType, "json") {
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(data, &payload); err == nil {
			if payload.Message != "" {
				apiErr.Message = payload.Message
				return apiErr
			}
			if payload.Error != "" {
				apiErr.Message = payload.Error
				return apiErr
			}
		}
	} else if text := strings.TrimSpace(string(data)); text != "" {
		apiErr.Message = text
		return apiErr
	}

	apiErr.Message = fmt.Sprintf("request failed (status %d)", resp.StatusCode)
	return apiErr
}

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
