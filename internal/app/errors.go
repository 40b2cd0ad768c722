package app

import "errors"

var (
	ErrNoSources = errors.New("no configuration sources provided")
)
