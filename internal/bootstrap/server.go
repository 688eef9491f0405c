package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/changhyeonkim/project-board/go-api-server/internal/config"
)

const maxHeaderBytes = 1 << 20

// Server owns the board's http.Server and closes its resources on shutdown
type Server struct {
	cfg     *config.Config
	server  *http.Server
	closers []func() error
}

// NewServer wraps handler with the configured timeouts.
// closers run in order after the listener has drained, e.g. db.Close.
func NewServer(cfg *config.Config, handler http.Handler, closers ...func() error) *Server {
	return &Server{
		cfg: cfg,
		server: &http.Server{
			Addr:           fmt.Sprintf(":%d", cfg.App.Port),
			Handler:        handler,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   cfg.Server.WriteTimeout,
			IdleTimeout:    cfg.Server.IdleTimeout,
			MaxHeaderBytes: maxHeaderBytes,
		},
		closers: closers,
	}
}

// Run serves until ctx is cancelled, then shuts down within cfg.Server.GracefulTimeout
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("포트 바인딩 실패 (%s): %w", s.server.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is Run on an already bound listener
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("서버 시작",
			"addr", listener.Addr().String(),
			"env", s.cfg.App.Env,
			"db_driver", s.cfg.Database.Driver,
			"request_timeout", s.cfg.Server.RequestTimeout.String(),
		)
		serverErrors <- s.server.Serve(listener)
	}()

	var runErr error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("서버 오류: %w", err)
		}
	case <-ctx.Done():
		slog.Info("종료 신호 수신됨", "cause", context.Cause(ctx))
		runErr = s.shutdown(s.cfg.Server.GracefulTimeout)
	}

	return errors.Join(runErr, s.close())
}

func (s *Server) shutdown(timeout time.Duration) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	slog.Info("HTTP 서버 종료 중", "graceful_timeout", timeout.String())
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("서버 강제 종료: %w", err)
	}
	return nil
}

func (s *Server) close() error {
	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
