package postgres

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"time"

	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/geo"
	"proximity/internal/domain/repository"
	"proximity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// zoneLockNamespace keeps zone advisory locks apart from other users of pg_advisory_xact_lock.
const zoneLockNamespace int32 = 0x7a6f6e65

type zoneRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewZoneRepository is the constructor for zoneRepository.
func NewZoneRepository(db *gorm.DB, logger *slog.Logger) repository.ZoneRepository {
	return &zoneRepository{db: db, logger: logger}
}

// CreateZone persists a new zone.
func (repo *zoneRepository) CreateZone(ctx context.Context, zone *entity.ProximityZone) error {
	zoneM, err := fromZoneDomain(zone)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(zoneM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create zone")
	}

	return nil
}

// UpdateZone writes every mutable column of the zone.
func (repo *zoneRepository) UpdateZone(ctx context.Context, zone *entity.ProximityZone) error {
	zoneM, err := fromZoneDomain(zone)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProximityZoneModel{}).
		Where("id = ? AND deleted_at IS NULL", zone.ID).
		Select("name", "description", "category", "latitude", "longitude", "radius_meters",
			"activation_enabled", "schedule", "timezone", "is_active", "updated_at").
		Updates(zoneM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update zone")
	}
	if result.RowsAffected == 0 {
		return repository.ErrZoneNotFound
	}

	return nil
}

// FindZoneByID retrieves a non-deleted zone.
func (repo *zoneRepository) FindZoneByID(ctx context.Context, id uuid.UUID) (*entity.ProximityZone, error) {
	var zoneM model.ProximityZoneModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&zoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrZoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find zone by ID")
	}

	return repo.toZoneDomain(ctx, &zoneM), nil
}

// ListZones lists non-deleted zones, newest first.
func (repo *zoneRepository) ListZones(ctx context.Context, filter repository.ZoneFilter) ([]*entity.ProximityZone, error) {
	query := repo.db.WithContext(ctx).Where("deleted_at IS NULL")
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	return repo.findZones(ctx, query.Order("created_at DESC"), "failed to list zones")
}

// FindActiveZonesInBound returns active zones whose centers fall inside the bound.
// A bound wrapping the antimeridian (Min.Lon > Max.Lon) is split in two longitude ranges.
func (repo *zoneRepository) FindActiveZonesInBound(ctx context.Context, bound orb.Bound) ([]*entity.ProximityZone, error) {
	query := repo.db.WithContext(ctx).
		Where("deleted_at IS NULL AND is_active = ?", true).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat())

	minLon, maxLon := bound.Min.Lon(), bound.Max.Lon()
	switch {
	case minLon > maxLon:
		query = query.Where("(longitude >= ? OR longitude <= ?)", minLon, maxLon)
	case minLon < -180:
		query = query.Where("(longitude >= ? OR longitude <= ?)", minLon+360, maxLon)
	case maxLon > 180:
		query = query.Where("(longitude >= ? OR longitude <= ?)", minLon, maxLon-360)
	default:
		query = query.Where("longitude BETWEEN ? AND ?", minLon, maxLon)
	}

	return repo.findZones(ctx, query, "failed to find zones in bound")
}

// FindActivatableZonesByOwner returns the owner's active zones with activation enabled.
func (repo *zoneRepository) FindActivatableZonesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ProximityZone, error) {
	query := repo.db.WithContext(ctx).
		Where("owner_id = ? AND deleted_at IS NULL AND is_active = ? AND activation_enabled = ?", ownerID, true, true)

	return repo.findZones(ctx, query, "failed to find activatable zones")
}

// LockOwner takes a transaction-scoped advisory lock on the owner. It only
// serializes writers when called inside TransactionManager.Execute.
func (repo *zoneRepository) LockOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?, ?)", zoneLockNamespace, ownerLockKey(ownerID)).Error; err != nil {
		return errors.Wrap(err, "failed to acquire owner zone lock")
	}

	return nil
}

// SoftDeleteZone hides the zone while keeping it for historical sessions.
func (repo *zoneRepository) SoftDeleteZone(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ProximityZoneModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]any{"deleted_at": now, "is_active": false, "updated_at": now})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft delete zone")
	}
	if result.RowsAffected == 0 {
		return repository.ErrZoneNotFound
	}

	return nil
}

// HardDeleteZone removes the zone row.
func (repo *zoneRepository) HardDeleteZone(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProximityZoneModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewConflictError(domainerrors.CodeZoneInUse, "zone is still referenced", id)
		}

		return errors.Wrap(result.Error, "failed to delete zone")
	}
	if result.RowsAffected == 0 {
		return repository.ErrZoneNotFound
	}

	return nil
}

func (repo *zoneRepository) findZones(ctx context.Context, query *gorm.DB, failure string) ([]*entity.ProximityZone, error) {
	var zoneModels []*model.ProximityZoneModel
	if err := query.Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, failure)
	}

	zones := make([]*entity.ProximityZone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zones = append(zones, repo.toZoneDomain(ctx, zoneM))
	}

	return zones, nil
}

func ownerLockKey(ownerID uuid.UUID) int32 {
	h := fnv.New32a()
	_, _ = h.Write(ownerID[:])

	return int32(h.Sum32())
}

// --- Mapper Functions ---

// toZoneDomain maps a row to a zone. A schedule that does not decode or fails
// validation leaves the zone unrestricted and is flagged for diagnostics.
func (repo *zoneRepository) toZoneDomain(ctx context.Context, data *model.ProximityZoneModel) *entity.ProximityZone {
	zone := &entity.ProximityZone{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		Name:              data.Name,
		Description:       data.Description,
		Category:          entity.ZoneCategory(data.Category),
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		RadiusMeters:      data.RadiusMeters,
		ActivationEnabled: data.ActivationEnabled,
		Timezone:          data.Timezone,
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		DeletedAt:         data.DeletedAt,
	}

	if len(data.Schedule) == 0 || string(data.Schedule) == "null" {
		return zone
	}

	var schedule entity.ZoneSchedule
	if err := json.Unmarshal(data.Schedule, &schedule); err != nil || !geo.ValidateSchedule(&schedule) {
		zone.ScheduleMalformed = true
		if repo.logger != nil {
			repo.logger.WarnContext(ctx, "Zone schedule is malformed, treating zone as always active",
				slog.String("zone_id", data.ID.String()),
				slog.String("schedule", string(data.Schedule)))
		}

		return zone
	}
	zone.Schedule = &schedule

	return zone
}

func fromZoneDomain(data *entity.ProximityZone) (*model.ProximityZoneModel, error) {
	zoneM := &model.ProximityZoneModel{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		Name:              data.Name,
		Description:       data.Description,
		Category:          string(data.Category),
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		RadiusMeters:      data.RadiusMeters,
		ActivationEnabled: data.ActivationEnabled,
		Timezone:          data.Timezone,
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		DeletedAt:         data.DeletedAt,
	}

	if data.Schedule != nil {
		raw, err := json.Marshal(data.Schedule)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode zone schedule")
		}
		zoneM.Schedule = datatypes.JSON(raw)
	}

	return zoneM, nil
}
