package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/MKhiriev/go-bookstore/internal/config"
	"github.com/MKhiriev/go-bookstore/internal/logger"
	"github.com/MKhiriev/go-bookstore/internal/routing"
)

const shutdownTimeout = 10 * time.Second

// Bootstrap assembles and starts the HTTP listener from resolved inputs:
// listener settings, a composed routing table, and transport options.
// The bootstrap sequence is synchronous; the returned handle reports the
// asynchronous up/down notifications.
type Bootstrap struct {
	cfg       config.Server
	table     *routing.Table
	transport TransportOptions
	logger    *logger.Logger
}

// NewBootstrap wires a bootstrap. The routing table and transport options
// must already be resolved — construction performs no I/O.
func NewBootstrap(cfg config.Server, table *routing.Table, transport TransportOptions, logger *logger.Logger) *Bootstrap {
	logger.Info().
		Bool("ssl", transport.TLS).
		Bool("http2", transport.HTTP2).
		Msg("creating new server...")

	return &Bootstrap{
		cfg:       cfg,
		table:     table,
		transport: transport,
		logger:    logger,
	}
}

// Start binds the listener and begins serving on a background goroutine.
//
// Binding is the single ready signal: on success the returned handle is
// already Running and its WhenUp notification has resolved. A bind failure
// returns ErrBind and no handle exists afterwards.
func (b *Bootstrap) Start() (*Handle, error) {
	handle := newHandle()
	if err := handle.transition(Created, Starting); err != nil {
		return nil, err
	}

	var handler http.Handler = b.table.Router()

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if b.cfg.RequestTimeout > 0 {
		srv.ReadTimeout = b.cfg.RequestTimeout
		srv.WriteTimeout = b.cfg.RequestTimeout
	}

	if err := b.layerTransport(srv); err != nil {
		return nil, err
	}

	addr := net.JoinHostPort(b.cfg.Host, strconv.Itoa(b.cfg.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w on %s: %s", ErrBind, addr, err)
	}

	if b.transport.TLS {
		listener = tls.NewListener(listener, srv.TLSConfig)
	}

	handle.server = srv
	handle.markRunning(listener.Addr().(*net.TCPAddr).Port)

	b.observe(handle)

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			b.logger.Error().Err(err).Msg("server stopped unexpectedly")
			handle.fail()
		}
	}()

	return handle, nil
}

// layerTransport applies the TLS and HTTP/2 options onto the server
// configuration. All four (TLS, HTTP/2) combinations are supported:
// plain HTTP/1.1, TLS-only, h2c, and TLS with ALPN-negotiated h2.
func (b *Bootstrap) layerTransport(srv *http.Server) error {
	if b.transport.TLS {
		if b.transport.TLSConfig == nil {
			// never downgrade to cleartext when TLS was requested
			return ErrKeystore
		}
		srv.TLSConfig = b.transport.TLSConfig.Clone()
	}

	if !b.transport.HTTP2 {
		return nil
	}

	if b.transport.TLS {
		if err := http2.ConfigureServer(srv, &http2.Server{}); err != nil {
			return fmt.Errorf("error enabling http2: %w", err)
		}
		return nil
	}

	// cleartext HTTP/2 via the h2c upgrade path
	srv.Handler = h2c.NewHandler(srv.Handler, &http2.Server{})
	return nil
}

// observe attaches the lifecycle reporter to the handle's one-shot
// notifications: human-readable status on start and stop.
func (b *Bootstrap) observe(handle *Handle) {
	go func() {
		<-handle.WhenUp()

		host := b.cfg.Host
		if host == "" {
			host = "localhost"
		}
		url := fmt.Sprintf("%s://%s%s", b.transport.Scheme(),
			net.JoinHostPort(host, strconv.Itoa(handle.Port())), routing.DefaultServicePath)

		b.logger.Info().
			Str("url", url).
			Bool("ssl", b.transport.TLS).
			Bool("http2", b.transport.HTTP2).
			Msg("web server is up!")
	}()

	go func() {
		<-handle.WhenDown()
		b.logger.Info().Msg("web server is down. good bye!")
	}()
}

// Run starts the listener and blocks until a shutdown signal arrives or the
// server dies on its own, then shuts down gracefully.
func (b *Bootstrap) Run() error {
	handle, err := b.Start()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := handle.Stop(shutdownCtx); err != nil {
			return err
		}
		b.logger.Info().Msg("server shutdown gracefully")
		return nil
	case <-handle.WhenDown():
		// server stopped without an external request: surface as-is
		return nil
	}
}
