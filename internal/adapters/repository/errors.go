package repository

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrNotFound        = errors.New("activity not found")
	ErrAlreadySignedUp = errors.New("student already signed up")
	ErrNotSignedUp     = errors.New("student not signed up")
	ErrLoadSeed        = errors.New("load seed failed")
)
