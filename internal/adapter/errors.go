package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrLocked              = errors.New("item locked")
	ErrNotProcessed        = errors.New("not processed")
	ErrInternalServerError = errors.New("internal server error")
)
