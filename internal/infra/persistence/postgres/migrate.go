package postgres

import (
	"context"

	"proximity/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Models lists every table owned by the proximity service, in creation order.
func Models() []any {
	return []any{
		&model.ProximityZoneModel{},
		&model.VendorProximityConfigModel{},
		&model.ProximitySessionModel{},
		&model.ProximityEventModel{},
		&model.VendorDeviceModel{},
	}
}

// partialIndexes cannot be expressed as struct tags.
var partialIndexes = []string{
	model.OpenSessionIndexDDL,
	model.ActiveConfigIndexDDL,
}

// Migrate creates or updates the schema, including the partial unique indexes
// that back the open-session and active-config rules.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate proximity tables")
	}

	for _, ddl := range partialIndexes {
		if err := tx.Exec(ddl).Error; err != nil {
			return errors.Wrap(err, "failed to create partial index")
		}
	}

	return nil
}
