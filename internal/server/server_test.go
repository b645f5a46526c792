package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bookstore/internal/books"
	"github.com/MKhiriev/go-bookstore/internal/config"
	"github.com/MKhiriev/go-bookstore/internal/logger"
	"github.com/MKhiriev/go-bookstore/internal/media"
	"github.com/MKhiriev/go-bookstore/internal/routing"
)

func composeTable(t *testing.T, strategy media.Strategy) *routing.Table {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)

	table, err := routing.Compose(cfg.Node(), strategy, books.NewService(logger.Nop()))
	require.NoError(t, err)
	return table
}

func startServer(t *testing.T, strategy media.Strategy, ssl, http2 bool) (*Handle, string) {
	t.Helper()

	transport, err := BuildTransport(ssl, http2)
	require.NoError(t, err)

	b := NewBootstrap(
		config.Server{Host: "127.0.0.1", Port: 0},
		composeTable(t, strategy),
		transport,
		logger.Nop(),
	)

	handle, err := b.Start()
	require.NoError(t, err)
	t.Cleanup(func() {
		if handle.State() == Running {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = handle.Stop(ctx)
		}
	})

	select {
	case <-handle.WhenUp():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not report up")
	}

	base := fmt.Sprintf("%s://%s", transport.Scheme(),
		net.JoinHostPort("127.0.0.1", strconv.Itoa(handle.Port())))
	return handle, base
}

func newClient(ssl bool) *resty.Client {
	client := resty.New().SetTimeout(5 * time.Second)
	if ssl {
		// self-signed bundled certificate
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	return client
}

// TestStart_AllTransportCombinations verifies that the server binds and
// answers under all four (ssl, http2) combinations.
func TestStart_AllTransportCombinations(t *testing.T) {
	for _, ssl := range []bool{false, true} {
		for _, http2 := range []bool{false, true} {
			t.Run(fmt.Sprintf("ssl=%v http2=%v", ssl, http2), func(t *testing.T) {
				_, base := startServer(t, media.JSONP, ssl, http2)

				resp, err := newClient(ssl).R().Get(base + "/health")
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, resp.StatusCode())
			})
		}
	}
}

// TestStart_DefaultScenario drives the full default-configuration scenario:
// books round-trip, health pass, metrics counters after a books request.
func TestStart_DefaultScenario(t *testing.T) {
	_, base := startServer(t, media.JSONP, false, false)
	client := newClient(false)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"isbn":"978-0134190440","title":"The Go Programming Language"}`).
		Post(base + "/books")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	resp, err = client.R().Get(base + "/books/978-0134190440")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), "The Go Programming Language")

	resp, err = client.R().Get(base + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), `"status":"pass"`)

	resp, err = client.R().Get(base + "/metrics")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), "bookstore_requests_total")
}

// TestStart_JacksonStrategy verifies that swapping the serialization
// strategy leaves the routing shape and operational endpoints untouched.
func TestStart_JacksonStrategy(t *testing.T) {
	_, base := startServer(t, media.Jackson, false, false)
	client := newClient(false)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"isbn":"1","title":"swapped codec"}`).
		Post(base + "/books")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	resp, err = client.R().Get(base + "/books")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), "swapped codec")

	resp, err = client.R().Get(base + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

// TestStart_BindConflict verifies that an occupied port fails the bootstrap
// with ErrBind and no handle is created.
func TestStart_BindConflict(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	port := occupied.Addr().(*net.TCPAddr).Port

	transport, err := BuildTransport(false, false)
	require.NoError(t, err)

	b := NewBootstrap(
		config.Server{Host: "127.0.0.1", Port: port},
		composeTable(t, media.JSONP),
		transport,
		logger.Nop(),
	)

	handle, err := b.Start()
	require.ErrorIs(t, err, ErrBind)
	assert.Nil(t, handle)
}

// TestStop_Lifecycle verifies the shutdown path: Running -> Stopped, the
// terminal notification fires, and a second Stop is rejected.
func TestStop_Lifecycle(t *testing.T) {
	handle, base := startServer(t, media.JSONP, false, false)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, handle.Stop(ctx))

	assert.Equal(t, Stopped, handle.State())
	select {
	case <-handle.WhenDown():
	case <-time.After(time.Second):
		t.Fatal("down notification did not resolve after stop")
	}

	// a stopped handle never restarts
	require.ErrorIs(t, handle.Stop(ctx), ErrInvalidTransition)

	// the listener is really gone
	_, err := newClient(false).R().Get(base + "/health")
	assert.Error(t, err)
}

// TestLayerTransport_RefusesDowngrade verifies that a TLS request without
// key material aborts instead of silently starting cleartext.
func TestLayerTransport_RefusesDowngrade(t *testing.T) {
	b := NewBootstrap(
		config.Server{Host: "127.0.0.1", Port: 0},
		composeTable(t, media.JSONP),
		TransportOptions{TLS: true, TLSConfig: nil}, // broken invariant
		logger.Nop(),
	)

	_, err := b.Start()
	require.ErrorIs(t, err, ErrKeystore)
}
