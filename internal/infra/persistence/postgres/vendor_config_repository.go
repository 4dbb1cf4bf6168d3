package postgres

import (
	"context"

	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/repository"
	"proximity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type vendorConfigRepository struct {
	db *gorm.DB
}

// NewVendorConfigRepository is the constructor for vendorConfigRepository.
func NewVendorConfigRepository(db *gorm.DB) repository.VendorConfigRepository {
	return &vendorConfigRepository{db: db}
}

// CreateConfig persists a new config. A second active config for the same pair is rejected by the unique index.
func (repo *vendorConfigRepository) CreateConfig(ctx context.Context, cfg *entity.VendorProximityConfig) error {
	if err := repo.db.WithContext(ctx).Create(fromConfigDomain(cfg)).Error; err != nil {
		if violatesConstraint(err, activeConfigIndex) {
			return repository.ErrDuplicateConfig
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrZoneNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor config")
	}

	return nil
}

// UpdateConfig writes the config's settings.
func (repo *vendorConfigRepository) UpdateConfig(ctx context.Context, cfg *entity.VendorProximityConfig) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorProximityConfigModel{}).
		Where("id = ?", cfg.ID).
		Select("recording_quality", "compression", "noise_cancellation", "confirm_before_start",
			"notify_on_start", "notify_on_stop", "max_duration_seconds", "monitoring_enabled",
			"is_active", "updated_at").
		Updates(fromConfigDomain(cfg))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vendor config")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConfigNotFound
	}

	return nil
}

// FindConfigByID retrieves a config regardless of its active flag.
func (repo *vendorConfigRepository) FindConfigByID(ctx context.Context, id uuid.UUID) (*entity.VendorProximityConfig, error) {
	var cfgM model.VendorProximityConfigModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&cfgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor config by ID")
	}

	return toConfigDomain(&cfgM), nil
}

// FindActiveConfig returns the active config for the pair; a nil zoneID selects the global config.
func (repo *vendorConfigRepository) FindActiveConfig(ctx context.Context, vendorID uuid.UUID, zoneID *uuid.UUID) (*entity.VendorProximityConfig, error) {
	query := repo.db.WithContext(ctx).Where("vendor_id = ? AND is_active = ?", vendorID, true)
	if zoneID == nil {
		query = query.Where("zone_id IS NULL")
	} else {
		query = query.Where("zone_id = ?", *zoneID)
	}

	var cfgM model.VendorProximityConfigModel
	if err := query.Order("updated_at DESC").First(&cfgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to find active vendor config")
	}

	return toConfigDomain(&cfgM), nil
}

// FindConfigsByVendor lists every config of the vendor, global first.
func (repo *vendorConfigRepository) FindConfigsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorProximityConfig, error) {
	var cfgModels []*model.VendorProximityConfigModel
	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("zone_id NULLS FIRST, created_at").
		Find(&cfgModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vendor configs")
	}

	configs := make([]*entity.VendorProximityConfig, 0, len(cfgModels))
	for _, cfgM := range cfgModels {
		configs = append(configs, toConfigDomain(cfgM))
	}

	return configs, nil
}

// DeactivateConfig marks the config inactive so the pair can be configured again.
func (repo *vendorConfigRepository) DeactivateConfig(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorProximityConfigModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate vendor config")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConfigNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toConfigDomain(data *model.VendorProximityConfigModel) *entity.VendorProximityConfig {
	return &entity.VendorProximityConfig{
		ID:                 data.ID,
		VendorID:           data.VendorID,
		ZoneID:             data.ZoneID,
		RecordingQuality:   entity.RecordingQuality(data.RecordingQuality),
		Compression:        data.Compression,
		NoiseCancellation:  data.NoiseCancellation,
		ConfirmBeforeStart: data.ConfirmBeforeStart,
		NotifyOnStart:      data.NotifyOnStart,
		NotifyOnStop:       data.NotifyOnStop,
		MaxDurationSeconds: data.MaxDurationSeconds,
		MonitoringEnabled:  data.MonitoringEnabled,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromConfigDomain(data *entity.VendorProximityConfig) *model.VendorProximityConfigModel {
	return &model.VendorProximityConfigModel{
		ID:                 data.ID,
		VendorID:           data.VendorID,
		ZoneID:             data.ZoneID,
		RecordingQuality:   string(data.RecordingQuality),
		Compression:        data.Compression,
		NoiseCancellation:  data.NoiseCancellation,
		ConfirmBeforeStart: data.ConfirmBeforeStart,
		NotifyOnStart:      data.NotifyOnStart,
		NotifyOnStop:       data.NotifyOnStop,
		MaxDurationSeconds: data.MaxDurationSeconds,
		MonitoringEnabled:  data.MonitoringEnabled,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
