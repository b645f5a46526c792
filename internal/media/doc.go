// Package media selects and applies the server's JSON serialization
// strategy.
//
// The strategy is resolved once at startup from the "app.json-library"
// configuration key and is immutable thereafter. Each strategy maps to a
// [Codec] that handlers obtain from the request context via [FromRequest];
// the codec is attached by [Middleware], which the route composer registers
// ahead of every payload-carrying handler.
package media
