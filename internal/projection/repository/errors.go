package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert projection")
	ErrFailedToGet    = errors.New("failed to get projection")
)
