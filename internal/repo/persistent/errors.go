package persistent

import (
	"errors"

	"videau/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return entity.ErrInvalidID
	}
	return nil
}

// validIDs drops entries that cannot address a row, keeping order.
func validIDs(ids []string) []string {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if validateID(id) == nil {
			valid = append(valid, id)
		}
	}
	return valid
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return err
}
