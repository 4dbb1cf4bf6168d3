package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "proximity/internal/delivery/context"
	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/repository"
	"proximity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type vendorConfigService struct {
	txManager  repository.TransactionManager
	configRepo repository.VendorConfigRepository
	zoneRepo   repository.ZoneRepository
	logger     *slog.Logger
	now        func() time.Time
}

// VendorConfigServiceParams holds dependencies for VendorConfigService, injected by Fx.
type VendorConfigServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ConfigRepo repository.VendorConfigRepository
	ZoneRepo   repository.ZoneRepository
	Logger     *slog.Logger
}

// NewVendorConfigService creates a new vendor config service instance
func NewVendorConfigService(params VendorConfigServiceParams) usecase.VendorConfigUsecase {
	return &vendorConfigService{
		txManager:  params.TxManager,
		configRepo: params.ConfigRepo,
		zoneRepo:   params.ZoneRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (s *vendorConfigService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// UpsertConfig replaces the active config of the (vendor, zone) pair or creates it
func (s *vendorConfigService) UpsertConfig(ctx context.Context, vendorID uuid.UUID, input *usecase.UpsertConfigInput) (*entity.VendorProximityConfig, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("config input is required")
	}

	quality := input.RecordingQuality
	if quality == "" {
		quality = entity.RecordingQualityMedium
	}
	if !quality.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("recording_quality must be low, medium or high")
	}
	if input.MaxDurationSeconds < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("max_duration_seconds must not be negative")
	}

	if input.ZoneID != nil {
		if _, err := s.zoneRepo.FindZoneByID(ctx, *input.ZoneID); err != nil {
			if errors.Is(err, repository.ErrZoneNotFound) {
				return nil, domainerrors.ErrZoneNotFound
			}

			return nil, errors.Wrap(err, "failed to find zone")
		}
	}

	var saved *entity.VendorProximityConfig
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		configRepo := repoFactory.NewVendorConfigRepository()
		now := s.now()

		existing, err := configRepo.FindActiveConfig(ctx, vendorID, input.ZoneID)
		switch {
		case err == nil:
			applyConfigInput(existing, quality, input)
			existing.UpdatedAt = now
			if err := configRepo.UpdateConfig(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to update vendor config")
			}
			saved = existing

			return nil
		case !errors.Is(err, repository.ErrConfigNotFound):
			return errors.Wrap(err, "failed to find vendor config")
		}

		cfg := &entity.VendorProximityConfig{
			ID:        uuid.New(),
			VendorID:  vendorID,
			ZoneID:    input.ZoneID,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		applyConfigInput(cfg, quality, input)
		if err := configRepo.CreateConfig(ctx, cfg); err != nil {
			return err
		}
		saved = cfg

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateConfig) {
			// A concurrent upsert created the pair first.
			if existing, findErr := s.configRepo.FindActiveConfig(ctx, vendorID, input.ZoneID); findErr == nil {
				return nil, domainerrors.NewConflictError(domainerrors.CodeConfigExists, "config already exists for this vendor and zone", existing.ID)
			}
		}

		return nil, errors.Wrap(err, "failed to upsert vendor config")
	}

	s.log(ctx).Info("Vendor proximity config saved",
		slog.String("vendor_id", vendorID.String()),
		slog.String("config_id", saved.ID.String()),
		slog.Bool("global", saved.IsGlobal()))

	return saved, nil
}

// ListConfigs lists every config of the vendor
func (s *vendorConfigService) ListConfigs(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorProximityConfig, error) {
	configs, err := s.configRepo.FindConfigsByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor configs")
	}

	return configs, nil
}

// DeleteConfig deactivates a config owned by the vendor
func (s *vendorConfigService) DeleteConfig(ctx context.Context, vendorID, configID uuid.UUID) error {
	cfg, err := s.configRepo.FindConfigByID(ctx, configID)
	if err != nil {
		if errors.Is(err, repository.ErrConfigNotFound) {
			return domainerrors.ErrConfigNotFound
		}

		return errors.Wrap(err, "failed to find vendor config")
	}
	if cfg.VendorID != vendorID {
		return domainerrors.ErrForbidden.WithDetails("config belongs to another vendor")
	}

	return errors.Wrap(s.configRepo.DeactivateConfig(ctx, configID), "failed to deactivate vendor config")
}

// ResolveConfig prefers the zone-scoped config, then the global config, then defaults
func (s *vendorConfigService) ResolveConfig(ctx context.Context, vendorID, zoneID uuid.UUID) (entity.ConfigSnapshot, error) {
	cfg, err := s.configRepo.FindActiveConfig(ctx, vendorID, &zoneID)
	if err == nil {
		return cfg.Snapshot(), nil
	}
	if !errors.Is(err, repository.ErrConfigNotFound) {
		return entity.ConfigSnapshot{}, errors.Wrap(err, "failed to find zone config")
	}

	cfg, err = s.configRepo.FindActiveConfig(ctx, vendorID, nil)
	if err == nil {
		return cfg.Snapshot(), nil
	}
	if !errors.Is(err, repository.ErrConfigNotFound) {
		return entity.ConfigSnapshot{}, errors.Wrap(err, "failed to find global config")
	}

	return entity.DefaultConfigSnapshot(), nil
}

func applyConfigInput(cfg *entity.VendorProximityConfig, quality entity.RecordingQuality, input *usecase.UpsertConfigInput) {
	cfg.RecordingQuality = quality
	cfg.Compression = input.Compression
	cfg.NoiseCancellation = input.NoiseCancellation
	cfg.ConfirmBeforeStart = input.ConfirmBeforeStart
	cfg.NotifyOnStart = input.NotifyOnStart
	cfg.NotifyOnStop = input.NotifyOnStop
	cfg.MaxDurationSeconds = input.MaxDurationSeconds
	cfg.MonitoringEnabled = input.MonitoringEnabled
}
