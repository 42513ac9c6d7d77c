package documents

import (
	"errors"
	"fmt"
)

// ErrDocumentNotFound indicates no landing document exists for a household.
var ErrDocumentNotFound = errors.New("documents: landing document not found")

// NotFoundError carries the resource and key of a failed lookup.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrDocumentNotFound
}
