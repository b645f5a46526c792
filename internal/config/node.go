package config

import "github.com/spf13/viper"

// Node is an immutable view into the hierarchical configuration tree.
//
// A Node addresses a position in the tree by dotted path; it may or may not
// exist. Traversal via [Node.Get] never fails — existence is only decided
// when the caller asks via [Node.Exists]. This keeps "key is absent" a
// regular, non-error state distinct from "key is present but empty".
type Node struct {
	v    *viper.Viper
	path string
}

// Get traverses to a child node by dotted path relative to the receiver.
// Get on a non-existent node is allowed and yields another non-existent node.
func (n Node) Get(path string) Node {
	if n.path == "" {
		return Node{v: n.v, path: path}
	}
	return Node{v: n.v, path: n.path + "." + path}
}

// Exists reports whether a value is present at this node's path.
// The root node always exists.
func (n Node) Exists() bool {
	if n.v == nil {
		return false
	}
	if n.path == "" {
		return true
	}
	return n.v.IsSet(n.path)
}

// String returns the node's value as a string. Returns the empty string when
// the node does not exist; callers that need to distinguish the two cases
// must check Exists first.
func (n Node) String() string {
	if n.v == nil {
		return ""
	}
	return n.v.GetString(n.path)
}

// Int returns the node's value as an int, or zero when absent.
func (n Node) Int() int {
	if n.v == nil {
		return 0
	}
	return n.v.GetInt(n.path)
}

// Path returns the dotted path this node addresses, empty for the root.
func (n Node) Path() string {
	return n.path
}
