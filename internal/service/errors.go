package service

import "errors"

// ErrInvalidInput is returned when a request is missing required fields.
var ErrInvalidInput = errors.New("invalid input")
