package media

import "errors"

var (
	// ErrUnknownStrategy indicates a configured serialization library name
	// outside the recognized set. Fatal at startup: silently defaulting
	// would mask misconfiguration.
	ErrUnknownStrategy = errors.New("unknown json library")

	// ErrNoCodec indicates a handler ran without the serialization
	// middleware attached. This is a routing composition defect and is
	// also verified at compose time.
	ErrNoCodec = errors.New("no media codec attached to request")
)
