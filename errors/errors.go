package errors

import "fmt"

var (
	ErrUnexpectedStatus = fmt.Errorf("unexpected status from token check")
	ErrEmptyKey         = fmt.Errorf("storage key must not be empty")
	ErrUnknownCommand   = fmt.Errorf("unknown command")
	ErrMissingArgument  = fmt.Errorf("missing argument")
	ErrInvalidToken     = fmt.Errorf("invalid or expired token")
)
