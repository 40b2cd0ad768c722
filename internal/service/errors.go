package service

import "errors"

var (
	ErrNoValueFetcher = errors.New("no value fetcher provided")
)
