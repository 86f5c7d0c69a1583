package models

import "errors"

// Custom errors
var (
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateEntry       = errors.New("record already exists")
	ErrIncompleteSubmission = errors.New("result submission has incomplete entries")
)
