package service

import "errors"

var (
	// ErrNotAuthenticated is returned when a save is attempted without a signed-in identity.
	ErrNotAuthenticated = errors.New("not authenticated, sign in to save content")
)
