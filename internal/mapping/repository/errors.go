package repository

import "errors"

var (
	ErrFailedToGet  = errors.New("failed to get column mapping")
	ErrFailedToSave = errors.New("failed to save column mapping")
)
