package media

import (
	"encoding/json"
	"io"

	gojson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
)

// Codec converts domain payloads to and from their wire representation.
// Implementations must be stateless and safe for concurrent use.
type Codec interface {
	// Name returns the strategy name the codec implements.
	Name() string

	// ContentType returns the media type written with encoded responses.
	ContentType() string

	// Encode writes v to w in the codec's wire format.
	Encode(w io.Writer, v any) error

	// Decode reads a value from r into v.
	Decode(r io.Reader, v any) error
}

const contentTypeJSON = "application/json"

// jsonpCodec streams payloads through the standard library.
type jsonpCodec struct{}

func (jsonpCodec) Name() string        { return JSONP.String() }
func (jsonpCodec) ContentType() string { return contentTypeJSON }

func (jsonpCodec) Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

func (jsonpCodec) Decode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

// jsonbCodec binds payloads with goccy/go-json.
type jsonbCodec struct{}

func (jsonbCodec) Name() string        { return JSONB.String() }
func (jsonbCodec) ContentType() string { return contentTypeJSON }

func (jsonbCodec) Encode(w io.Writer, v any) error {
	return gojson.NewEncoder(w).Encode(v)
}

func (jsonbCodec) Decode(r io.Reader, v any) error {
	return gojson.NewDecoder(r).Decode(v)
}

// jacksonCodec binds payloads with json-iterator.
type jacksonCodec struct{}

var jacksonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func (jacksonCodec) Name() string        { return Jackson.String() }
func (jacksonCodec) ContentType() string { return contentTypeJSON }

func (jacksonCodec) Encode(w io.Writer, v any) error {
	return jacksonAPI.NewEncoder(w).Encode(v)
}

func (jacksonCodec) Decode(r io.Reader, v any) error {
	return jacksonAPI.NewDecoder(r).Decode(v)
}
