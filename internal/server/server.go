package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"notable/internal/store"
)

// Server hosts the local notes API over a NoteStore.
type Server struct {
	addr    string
	version string
	log     zerolog.Logger
	api     *API
	server  *http.Server
}

func New(addr, version string, notes store.NoteStore, log zerolog.Logger) *Server {
	return &Server{
		addr:    addr,
		version: version,
		log:     log,
		api: &API{
			Version: version,
			Service: NewNoteService(notes),
			Logger:  log,
		},
	}
}

// Handler exposes the API router for tests.
func (s *Server) Handler() http.Handler {
	return s.api.Router()
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.addr).Msg("notes server listening")
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
