package service

import "errors"

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrEmptyContactID  = errors.New("contact id is empty")
	ErrEmptyName       = errors.New("search name is empty")
	ErrInvalidPaging   = errors.New("invalid paging window")
	ErrUnexpectedData  = errors.New("unexpected response data")
)
