package errors

import "errors"

var (
	// ErrNoFile means the import request carried no upload.
	ErrNoFile = errors.New("no file uploaded")
	// ErrEmptySheet means the uploaded export parsed to zero rows.
	ErrEmptySheet = errors.New("empty or unreadable sheet")
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)
