package mapping

import "errors"

var (
	ErrEmptyMapping       = errors.New("column mapping must contain at least one column")
	ErrDuplicateColumnID  = errors.New("column ids must be unique")
	ErrPassedColumnCount  = errors.New("column mapping must contain exactly one passed column")
	ErrFailedColumnCount  = errors.New("column mapping must contain exactly one failed column")
	ErrUnknownColumnType  = errors.New("unknown column type")
	ErrOwnerUserIDMissing = errors.New("owner user id is required")
)
