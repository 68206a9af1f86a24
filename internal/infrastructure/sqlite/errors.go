package sqlite

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation detecta violaciones de UNIQUE (traducidas por gorm o por mensaje del driver).
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyViolation detecta violaciones de FOREIGN KEY.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
