package arr

import "errors"

// Sentinel errors returned by [InvokeMethod].
//
// Use [errors.Is] for comparisons:
//
//	_, err := arr.InvokeMethod(items, "Close")
//	if errors.Is(err, arr.ErrMethodNotFound) {
//	    // some item has no Close method
//	}
var (
	// ErrMethodNotFound is returned when an item has no exported method with
	// the requested name.
	ErrMethodNotFound = errors.New("arr: method not found")

	// ErrInvalidArguments is returned when the supplied arguments cannot be
	// passed to the method (wrong count, wrong types, or untyped nil).
	ErrInvalidArguments = errors.New("arr: arguments do not match method signature")
)
