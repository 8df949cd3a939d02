package usecase

import (
	"errors"

	"videau/internal/entity"
	"videau/pkg/apperror"
)

// absent reports whether err means the row does not exist.
func absent(err error) bool {
	return errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrInvalidID)
}

// classify maps a repository error to the absent or failed variant of an operation.
func classify(err error, absentKind apperror.Kind, absentMessage string, failKind apperror.Kind, failMessage string) error {
	if errors.Is(err, entity.ErrNotFound) {
		return apperror.Wrap(absentKind, absentMessage, err)
	}
	return apperror.Wrap(failKind, failMessage, err)
}
