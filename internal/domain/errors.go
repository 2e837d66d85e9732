package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrConflict          = errors.New("already exists")
	ErrAlreadyPosted     = errors.New("post already published")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// DuplicateError reports that an article with the same link or external id
// is already stored.
type DuplicateError struct {
	ArticleID int64
	Key       string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("article %d already exists for %s", e.ArticleID, e.Key)
}

func (e *DuplicateError) Unwrap() error {
	return ErrConflict
}
