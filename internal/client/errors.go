package client

import "errors"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrSecretsDiffer    = errors.New("entered secrets do not match")
	ErrEmptyMasterInput = errors.New("master secret must not be empty")
)
