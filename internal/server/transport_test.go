package server

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildTransport_Matrix verifies all four (ssl, http2) combinations:
// the TLS context is present if and only if ssl is requested, and the
// HTTP/2 flag mirrors the input.
func TestBuildTransport_Matrix(t *testing.T) {
	for _, ssl := range []bool{false, true} {
		for _, http2 := range []bool{false, true} {
			t.Run(fmt.Sprintf("ssl=%v http2=%v", ssl, http2), func(t *testing.T) {
				opts, err := BuildTransport(ssl, http2)
				require.NoError(t, err)

				assert.Equal(t, ssl, opts.TLS)
				assert.Equal(t, http2, opts.HTTP2)
				assert.Equal(t, ssl, opts.TLSConfig != nil, "tls context present iff ssl enabled")
			})
		}
	}
}

// TestTransportOptions_Scheme verifies the reported URL scheme.
func TestTransportOptions_Scheme(t *testing.T) {
	assert.Equal(t, "http", TransportOptions{}.Scheme())
	assert.Equal(t, "https", TransportOptions{TLS: true}.Scheme())
}
