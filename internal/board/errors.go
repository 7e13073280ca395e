package board

import "errors"

var (
	ErrIssueNotOnBoard = errors.New("active issue is not on the board")
	ErrBadDropTarget   = errors.New("exactly one of target issue and target column must be set")
)
