// Package config loads and exposes the bookstore server configuration.
//
// Configuration is assembled from three layered sources merged in priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables (BOOKSTORE_-prefixed)
//  2. YAML file (application.yaml, or a path given via -c / CONFIG)
//  3. Built-in defaults
//
// Beyond the typed [Server] settings, the package exposes the raw
// configuration tree as a [Node]: an immutable hierarchical view with
// dotted-path lookup and an explicit existence check. Absence of a node is
// a distinct, non-error state — callers must check [Node.Exists] before
// converting a value.
package config
