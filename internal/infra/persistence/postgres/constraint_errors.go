package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint names the repositories translate into domain errors.
const (
	openSessionIndex  = "uq_proximity_sessions_open_vendor"
	activeConfigIndex = "uq_vendor_proximity_configs_active"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // unique_violation
}

// violatesConstraint reports a unique violation on the named index. Without
// TranslateError the driver message is the only place the index name appears.
func violatesConstraint(err error, name string) bool {
	if !isUniqueConstraintViolation(err) {
		return false
	}

	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), name)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "23503") // foreign_key_violation
}
