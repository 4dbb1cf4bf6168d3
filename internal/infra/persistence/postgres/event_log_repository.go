package postgres

import (
	"context"
	"encoding/json"

	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/repository"
	"proximity/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type eventLogRepository struct {
	db *gorm.DB
}

// NewEventLogRepository is the constructor for eventLogRepository.
func NewEventLogRepository(db *gorm.DB) repository.EventLogRepository {
	return &eventLogRepository{db: db}
}

// AppendEvent inserts the event. Replays of an already stored id are dropped
// so outbox retries stay idempotent.
func (repo *eventLogRepository) AppendEvent(ctx context.Context, event *entity.ProximityEvent) error {
	eventM, err := fromEventDomain(event)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Omit("seq").
		Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append event")
	}

	return nil
}

// ListEvents returns events oldest first.
func (repo *eventLogRepository) ListEvents(ctx context.Context, filter entity.EventFilter) ([]*entity.ProximityEvent, error) {
	query := repo.db.WithContext(ctx)
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.SessionID != nil {
		query = query.Where("session_id = ?", *filter.SessionID)
	}
	if len(filter.Types) > 0 {
		types := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			types = append(types, string(t))
		}
		query = query.Where("type IN ?", types)
	}
	if filter.Since != nil {
		query = query.Where("occurred_at >= ?", *filter.Since)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var eventModels []*model.ProximityEventModel
	if err := query.Order("occurred_at, seq").Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.ProximityEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		event, err := toEventDomain(eventM)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// --- Mapper Functions ---

func toEventDomain(data *model.ProximityEventModel) (*entity.ProximityEvent, error) {
	event := &entity.ProximityEvent{
		ID:              data.ID,
		Type:            entity.EventType(data.Type),
		VendorID:        data.VendorID,
		ZoneID:          data.ZoneID,
		SessionID:       data.SessionID,
		ConfidenceScore: data.ConfidenceScore,
		OccurredAt:      data.OccurredAt,
		CreatedAt:       data.CreatedAt,
	}

	if data.Latitude != nil && data.Longitude != nil {
		position := entity.Position{Latitude: *data.Latitude, Longitude: *data.Longitude}
		if data.AccuracyMeters != nil {
			position.AccuracyMeters = *data.AccuracyMeters
		}
		if data.PositionAt != nil {
			position.Timestamp = *data.PositionAt
		}
		event.Position = &position
	}
	if len(data.Metadata) > 0 {
		if err := json.Unmarshal(data.Metadata, &event.Metadata); err != nil {
			return nil, errors.Wrapf(err, "failed to decode metadata of event %s", data.ID)
		}
	}

	return event, nil
}

func fromEventDomain(data *entity.ProximityEvent) (*model.ProximityEventModel, error) {
	eventM := &model.ProximityEventModel{
		ID:              data.ID,
		Type:            string(data.Type),
		VendorID:        data.VendorID,
		ZoneID:          data.ZoneID,
		SessionID:       data.SessionID,
		ConfidenceScore: data.ConfidenceScore,
		OccurredAt:      data.OccurredAt,
		CreatedAt:       data.CreatedAt,
	}

	if data.Position != nil {
		p := *data.Position
		eventM.Latitude = &p.Latitude
		eventM.Longitude = &p.Longitude
		eventM.AccuracyMeters = &p.AccuracyMeters
		eventM.PositionAt = &p.Timestamp
	}
	if len(data.Metadata) > 0 {
		raw, err := json.Marshal(data.Metadata)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode event metadata")
		}
		eventM.Metadata = datatypes.JSON(raw)
	}

	return eventM, nil
}
