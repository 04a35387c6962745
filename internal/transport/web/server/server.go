package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/acme/autocert"
)

type Server struct {
	TLSDisabled      bool
	TLSDisabledPort  int
	AutocertHostname string
	Router           http.Handler
}

// Run serves until the listener fails or ctx is cancelled, at which
// point in-flight requests get a short grace period to finish.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Handler: s.Router}

	errChan := make(chan error, 1)
	go func() {
		if s.TLSDisabled {
			srv.Addr = fmt.Sprintf(":%d", s.TLSDisabledPort)
			errChan <- srv.ListenAndServe()
			return
		}

		errChan <- srv.Serve(autocert.NewListener(s.AutocertHostname))
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
