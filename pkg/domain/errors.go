package domain

import "errors"

// ErrUnknownAction is returned when a dispatch names an action that was
// never registered.
var ErrUnknownAction = errors.New("unknown action")
