package service

import (
	"errors"
	"strings"
)

const RequiredFieldsMessage = "Please fill in all required fields!"

var (
	ErrBookNotFound       = errors.New("book not found")
	ErrInvalidSearchField = errors.New("search field must be title or author")
)

// ValidationError lists the required fields that were left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return RequiredFieldsMessage + " (missing: " + strings.Join(e.Fields, ", ") + ")"
}
