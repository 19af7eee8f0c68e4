package inventory

import "errors"

var (
	// ErrMalformedRow is returned when a source row has the wrong field count or
	// a field that cannot be parsed.
	ErrMalformedRow = errors.New("malformed source row")

	// ErrUnknownItem is returned when a price or service date row references an
	// identifier that the primary source did not define.
	ErrUnknownItem = errors.New("unknown item id")

	// ErrUnresolvedField is returned when a price or service date is needed but
	// was never loaded for the item.
	ErrUnresolvedField = errors.New("field not resolved")
)
