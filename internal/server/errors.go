// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrKeystore indicates the bundled key material could not be loaded
	// or decrypted. Fatal: TLS was explicitly requested, so starting
	// unencrypted is not an option.
	ErrKeystore = errors.New("error loading tls keystore")

	// ErrBind indicates the listener could not acquire the requested
	// address.
	ErrBind = errors.New("error binding listener")

	// ErrInvalidTransition indicates a lifecycle transition that the
	// handle's state machine does not allow (e.g. stopping a handle that
	// is not running).
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
)
