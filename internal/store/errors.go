package store

import (
	"errors"
	"strings"
)

// ErrListNotFound indicates a list lookup matched nothing.
var ErrListNotFound = errors.New("list not found")

// ErrDuplicateList indicates a create or rename collided with an existing
// list name (names are unique case-insensitively).
var ErrDuplicateList = errors.New("list already exists")

// ErrItemNotFound indicates an item lookup matched nothing.
var ErrItemNotFound = errors.New("item not found")

func translateConstraint(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateList
	}
	return err
}
