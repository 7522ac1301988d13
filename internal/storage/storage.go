package storage

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
)
