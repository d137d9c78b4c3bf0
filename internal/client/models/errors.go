package models

import "errors"

// ErrMissingField is returned before any request is sent when a required
// form field is empty.
var ErrMissingField = errors.New("missing required field")
