package httpserver

import (
	"context"
	"errors"
	"net/http"
)

// Start serves until Shutdown is called.
func (srv *HTTPServer) Start() error {
	srv.logger.Infof(context.Background(), "control server listening on %s", srv.addr)
	if err := srv.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (srv *HTTPServer) Shutdown(ctx context.Context) error {
	return srv.srv.Shutdown(ctx)
}

// ServeHTTP lets tests drive the router directly.
func (srv *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	srv.gin.ServeHTTP(w, r)
}
