package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"proximity/config"
	deliverycontext "proximity/internal/delivery/context"
	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/geo"
	"proximity/internal/domain/repository"
	"proximity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type zoneService struct {
	txManager     repository.TransactionManager
	zoneRepo      repository.ZoneRepository
	minSeparation float64
	defaultTZ     string
	logger        *slog.Logger
	now           func() time.Time
}

// ZoneServiceParams holds dependencies for ZoneService, injected by Fx.
type ZoneServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ZoneRepo  repository.ZoneRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewZoneService creates a new zone service instance
func NewZoneService(params ZoneServiceParams) usecase.ZoneUsecase {
	minSeparation := 50.0
	defaultTZ := "UTC"
	if params.Config != nil && params.Config.Proximity != nil {
		if params.Config.Proximity.MinZoneSeparationMeters > 0 {
			minSeparation = params.Config.Proximity.MinZoneSeparationMeters
		}
		if params.Config.Proximity.DefaultTimezone != "" {
			defaultTZ = params.Config.Proximity.DefaultTimezone
		}
	}

	return &zoneService{
		txManager:     params.TxManager,
		zoneRepo:      params.ZoneRepo,
		minSeparation: minSeparation,
		defaultTZ:     defaultTZ,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (s *zoneService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateZone validates and persists a new zone owned by the manager
func (s *zoneService) CreateZone(ctx context.Context, managerID uuid.UUID, input *usecase.CreateZoneInput) (*entity.ProximityZone, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("zone input is required")
	}

	activationEnabled := true
	if input.ActivationEnabled != nil {
		activationEnabled = *input.ActivationEnabled
	}

	timezone := strings.TrimSpace(input.Timezone)
	if timezone == "" {
		timezone = s.defaultTZ
	}

	now := s.now()
	zone := &entity.ProximityZone{
		ID:                uuid.New(),
		OwnerID:           managerID,
		Name:              strings.TrimSpace(input.Name),
		Description:       input.Description,
		Category:          input.Category,
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
		RadiusMeters:      input.RadiusMeters,
		ActivationEnabled: activationEnabled,
		Schedule:          input.Schedule,
		Timezone:          timezone,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := validateZone(zone); err != nil {
		return nil, err
	}

	if err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		zoneRepo := repoFactory.NewZoneRepository()

		if err := zoneRepo.LockOwner(ctx, managerID); err != nil {
			return errors.Wrap(err, "failed to lock owner zones")
		}
		if err := s.ensureSeparation(ctx, zoneRepo, zone); err != nil {
			return err
		}

		return errors.Wrap(zoneRepo.CreateZone(ctx, zone), "failed to create zone")
	}); err != nil {
		return nil, err
	}

	s.log(ctx).Info("Proximity zone created",
		slog.String("zone_id", zone.ID.String()),
		slog.String("owner_id", managerID.String()),
		slog.String("category", string(zone.Category)))

	return zone, nil
}

// UpdateZone applies a partial update to a zone owned by the manager
func (s *zoneService) UpdateZone(ctx context.Context, managerID, zoneID uuid.UUID, input *usecase.UpdateZoneInput) (*entity.ProximityZone, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("zone input is required")
	}

	var updated *entity.ProximityZone
	if err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		zoneRepo := repoFactory.NewZoneRepository()

		if err := zoneRepo.LockOwner(ctx, managerID); err != nil {
			return errors.Wrap(err, "failed to lock owner zones")
		}

		zone, err := s.findOwnedZone(ctx, zoneRepo, managerID, zoneID)
		if err != nil {
			return err
		}

		applyZoneUpdates(zone, input)
		zone.UpdatedAt = s.now()

		if err := validateZone(zone); err != nil {
			return err
		}
		if err := s.ensureSeparation(ctx, zoneRepo, zone); err != nil {
			return err
		}
		if err := zoneRepo.UpdateZone(ctx, zone); err != nil {
			return errors.Wrap(err, "failed to update zone")
		}
		updated = zone

		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteZone hard-deletes an unreferenced zone, soft-deletes a zone with only
// historical sessions and refuses while a session is still open in it.
func (s *zoneService) DeleteZone(ctx context.Context, managerID, zoneID uuid.UUID) (*usecase.DeleteZoneResult, error) {
	result := &usecase.DeleteZoneResult{ZoneID: zoneID}

	if err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		zoneRepo := repoFactory.NewZoneRepository()
		sessionRepo := repoFactory.NewSessionRepository()

		if err := zoneRepo.LockOwner(ctx, managerID); err != nil {
			return errors.Wrap(err, "failed to lock owner zones")
		}
		if _, err := s.findOwnedZone(ctx, zoneRepo, managerID, zoneID); err != nil {
			return err
		}

		open, err := sessionRepo.FindLatestSessionByZone(ctx, zoneID, entity.OpenSessionStates)
		switch {
		case err == nil:
			return domainerrors.NewConflictError(domainerrors.CodeZoneInUse, "zone has an open recording session", open.ID)
		case !errors.Is(err, repository.ErrSessionNotFound):
			return errors.Wrap(err, "failed to check open sessions")
		}

		_, err = sessionRepo.FindLatestSessionByZone(ctx, zoneID, nil)
		switch {
		case err == nil:
			result.SoftDeleted = true

			return errors.Wrap(zoneRepo.SoftDeleteZone(ctx, zoneID), "failed to soft delete zone")
		case errors.Is(err, repository.ErrSessionNotFound):
			return errors.Wrap(zoneRepo.HardDeleteZone(ctx, zoneID), "failed to delete zone")
		default:
			return errors.Wrap(err, "failed to check session history")
		}
	}); err != nil {
		return nil, err
	}

	s.log(ctx).Info("Proximity zone deleted",
		slog.String("zone_id", zoneID.String()),
		slog.Bool("soft", result.SoftDeleted))

	return result, nil
}

// GetZone retrieves a zone by ID
func (s *zoneService) GetZone(ctx context.Context, zoneID uuid.UUID) (*entity.ProximityZone, error) {
	zone, err := s.zoneRepo.FindZoneByID(ctx, zoneID)
	if err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return nil, domainerrors.ErrZoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find zone")
	}

	return zone, nil
}

// ListZones lists zones, optionally restricted to one owner
func (s *zoneService) ListZones(ctx context.Context, ownerID *uuid.UUID) ([]*entity.ProximityZone, error) {
	zones, err := s.zoneRepo.ListZones(ctx, repository.ZoneFilter{OwnerID: ownerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list zones")
	}

	return zones, nil
}

// FindCandidateZones returns active zones whose centers lie inside the search box around the position
func (s *zoneService) FindCandidateZones(ctx context.Context, position entity.Position, radiusMeters float64) ([]*entity.ProximityZone, error) {
	zones, err := s.zoneRepo.FindActiveZonesInBound(ctx, geo.SearchBound(position, radiusMeters))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find candidate zones")
	}

	return zones, nil
}

func (s *zoneService) findOwnedZone(ctx context.Context, zoneRepo repository.ZoneRepository, managerID, zoneID uuid.UUID) (*entity.ProximityZone, error) {
	zone, err := zoneRepo.FindZoneByID(ctx, zoneID)
	if err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return nil, domainerrors.ErrZoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find zone")
	}
	if zone.OwnerID != managerID {
		return nil, domainerrors.ErrForbidden.WithDetails("zone belongs to another manager")
	}

	return zone, nil
}

// ensureSeparation rejects a zone whose center is too close to another of the owner's activatable zones.
func (s *zoneService) ensureSeparation(ctx context.Context, zoneRepo repository.ZoneRepository, zone *entity.ProximityZone) error {
	if !zone.IsActive || !zone.ActivationEnabled {
		return nil
	}

	siblings, err := zoneRepo.FindActivatableZonesByOwner(ctx, zone.OwnerID)
	if err != nil {
		return errors.Wrap(err, "failed to load owner zones")
	}

	for _, other := range siblings {
		if other.ID == zone.ID {
			continue
		}
		d := geo.Distance(zone.Latitude, zone.Longitude, other.Latitude, other.Longitude)
		if d < s.minSeparation {
			return domainerrors.NewConflictError(
				domainerrors.CodeZoneTooClose,
				fmt.Sprintf("zone center is %.0f m from another active zone (minimum %.0f m)", geo.RoundMeters(d), s.minSeparation),
				other.ID,
			)
		}
	}

	return nil
}

func validateZone(zone *entity.ProximityZone) error {
	switch {
	case zone.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case !zone.Category.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown zone category")
	case zone.Latitude < -90 || zone.Latitude > 90:
		return domainerrors.ErrValidationFailed.WithDetails("latitude must be within [-90, 90]")
	case zone.Longitude < -180 || zone.Longitude > 180:
		return domainerrors.ErrValidationFailed.WithDetails("longitude must be within [-180, 180]")
	case zone.RadiusMeters < entity.MinZoneRadiusMeters || zone.RadiusMeters > entity.MaxZoneRadiusMeters:
		return domainerrors.ErrValidationFailed.WithDetails("radius must be within [1, 10000] meters")
	case !geo.ValidateSchedule(zone.Schedule):
		return domainerrors.ErrValidationFailed.WithDetails("schedule weekdays must be 1-7 and windows within 0-1439")
	}

	if _, err := time.LoadLocation(zone.Timezone); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("unknown timezone " + zone.Timezone)
	}

	return nil
}

func applyZoneUpdates(zone *entity.ProximityZone, input *usecase.UpdateZoneInput) {
	if input.Name != nil {
		zone.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		zone.Description = *input.Description
	}
	if input.Category != nil {
		zone.Category = *input.Category
	}
	if input.Latitude != nil {
		zone.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		zone.Longitude = *input.Longitude
	}
	if input.RadiusMeters != nil {
		zone.RadiusMeters = *input.RadiusMeters
	}
	if input.ActivationEnabled != nil {
		zone.ActivationEnabled = *input.ActivationEnabled
	}
	if input.ClearSchedule {
		zone.Schedule = nil
		zone.ScheduleMalformed = false
	} else if input.Schedule != nil {
		zone.Schedule = input.Schedule
		zone.ScheduleMalformed = false
	}
	if input.Timezone != nil {
		zone.Timezone = *input.Timezone
	}
	if input.IsActive != nil {
		zone.IsActive = *input.IsActive
	}
}
