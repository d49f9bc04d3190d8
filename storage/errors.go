package storage

import "errors"

var (
	ErrNotFound    = errors.New("storage: not found")
	ErrInvalidCID  = errors.New("storage: invalid cid")
	ErrInvalidGame = errors.New("storage: invalid game id")
	ErrCIDMismatch = errors.New("storage: cid mismatch")
	ErrImmutable   = errors.New("storage: immutable object mismatch")
	ErrNoPath      = errors.New("storage: output path is required")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
