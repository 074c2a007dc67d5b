package harness

import "errors"

var (
	// ErrInvalidCase indicates a case that cannot be evaluated (missing name,
	// no source, or nothing to check against).
	ErrInvalidCase = errors.New("harness: invalid case")

	// ErrManifest indicates a manifest that could not be read or decoded.
	ErrManifest = errors.New("harness: bad manifest")
)
