package models

import "errors"

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrUpstream        = errors.New("upstream request failed")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidPageSize = errors.New("invalid page size")
)
