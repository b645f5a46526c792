package media

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bookstore/internal/config"
)

// Strategy identifies one of the supported JSON serialization libraries.
// The set is closed; an unrecognized configuration value is a fatal startup
// error, never a silent fallback to the default.
type Strategy int

const (
	// JSONP is the default strategy, backed by the standard library's
	// streaming encoder and decoder.
	JSONP Strategy = iota
	// JSONB binds payloads with goccy/go-json.
	JSONB
	// Jackson binds payloads with json-iterator.
	Jackson
)

// ConfigPath is the dotted configuration path the strategy is resolved from.
const ConfigPath = "app.json-library"

func (s Strategy) String() string {
	switch s {
	case JSONP:
		return "jsonp"
	case JSONB:
		return "jsonb"
	case Jackson:
		return "jackson"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Codec returns the codec implementing the strategy.
func (s Strategy) Codec() Codec {
	switch s {
	case JSONB:
		return jsonbCodec{}
	case Jackson:
		return jacksonCodec{}
	default:
		return jsonpCodec{}
	}
}

// Resolve reads the serialization strategy from the configuration tree.
//
// An absent node yields the default [JSONP]. A present node is matched
// case-insensitively against the recognized names; anything else returns
// [ErrUnknownStrategy] wrapped with the offending value. Resolution has no
// side effects beyond the lookup.
func Resolve(node config.Node) (Strategy, error) {
	n := node.Get(ConfigPath)
	if !n.Exists() {
		return JSONP, nil
	}

	switch strings.ToLower(n.String()) {
	case "jsonp":
		return JSONP, nil
	case "jsonb":
		return JSONB, nil
	case "jackson":
		return Jackson, nil
	default:
		return JSONP, fmt.Errorf("%w: %q", ErrUnknownStrategy, n.String())
	}
}
