package server

import "crypto/tls"

// TransportOptions captures the listener's transport layering resolved once
// before binding.
//
// Invariant: TLSConfig is non-nil if and only if TLS is true. HTTP2 is
// orthogonal to TLS — all four combinations are valid listener setups.
type TransportOptions struct {
	TLS       bool
	TLSConfig *tls.Config
	HTTP2     bool
}

// BuildTransport resolves the transport options for the requested flags.
// When ssl is set, the bundled keystore is decoded eagerly so that broken
// key material fails the bootstrap before a socket is opened.
func BuildTransport(ssl, http2 bool) (TransportOptions, error) {
	opts := TransportOptions{TLS: ssl, HTTP2: http2}

	if ssl {
		tlsConfig, err := loadTLSConfig()
		if err != nil {
			return TransportOptions{}, err
		}
		opts.TLSConfig = tlsConfig
	}

	return opts, nil
}

// Scheme returns the URL scheme the listener will answer on.
func (o TransportOptions) Scheme() string {
	if o.TLS {
		return "https"
	}
	return "http"
}
