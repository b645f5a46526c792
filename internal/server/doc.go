// Package server boots and runs the bookstore HTTP listener.
//
// It resolves the transport options (TLS on/off, HTTP/2 on/off) requested at
// startup, binds the listener with a composed routing table, and hands back
// a [Handle] tracking the lifecycle:
//
//	Created -> Starting -> Running -> Stopping -> Stopped
//
// Binding the socket is the single externally observable "ready" signal;
// [Handle.WhenUp] and [Handle.WhenDown] expose the two one-shot completion
// notifications. A stopped handle cannot be restarted — construct a new one
// for a new listener instance.
//
// Startup is fail-fast: keystore decode failures, bind failures, and invalid
// transport combinations abort before any socket serves traffic. In
// particular the server never starts unencrypted when TLS was requested.
package server
