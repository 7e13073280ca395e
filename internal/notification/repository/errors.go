package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert notification")
	ErrFailedToList   = errors.New("failed to list notifications")
)
