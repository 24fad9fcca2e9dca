package entity

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateName    = errors.New("name already registered")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrInvalidReference = errors.New("referenced record does not exist")
)
