package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type VersionRepository interface {
	Insert(ctx context.Context, version *db_models.ItineraryVersion) error
	NextVersionNumber(ctx context.Context, itineraryID uuid.UUID) (int, error)
	ListByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]db_models.ItineraryVersion, error)
	FindByNumber(ctx context.Context, itineraryID uuid.UUID, versionNumber int) (*db_models.ItineraryVersion, error)
	Latest(ctx context.Context, itineraryID uuid.UUID) (*db_models.ItineraryVersion, error)
}

type versionRepository struct {
	db *gorm.DB
}

func NewVersionRepository(db *gorm.DB) VersionRepository {
	return &versionRepository{db: db}
}

func (r *versionRepository) Insert(ctx context.Context, version *db_models.ItineraryVersion) error {
	return r.db.WithContext(ctx).Create(version).Error
}

func (r *versionRepository) NextVersionNumber(ctx context.Context, itineraryID uuid.UUID) (int, error) {
	var maxVersion int
	err := r.db.WithContext(ctx).
		Model(&db_models.ItineraryVersion{}).
		Where("itinerary_id = ?", itineraryID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&maxVersion).Error
	if err != nil {
		return 0, err
	}
	return maxVersion + 1, nil
}

func (r *versionRepository) ListByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]db_models.ItineraryVersion, error) {
	var versions []db_models.ItineraryVersion
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("itinerary_id = ?", itineraryID).
		Order("version_number DESC").
		Find(&versions).Error
	if err != nil {
		return nil, err
	}
	return versions, nil
}

func (r *versionRepository) FindByNumber(ctx context.Context, itineraryID uuid.UUID, versionNumber int) (*db_models.ItineraryVersion, error) {
	var version db_models.ItineraryVersion
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("itinerary_id = ? AND version_number = ?", itineraryID, versionNumber).
		First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &version, nil
}

func (r *versionRepository) Latest(ctx context.Context, itineraryID uuid.UUID) (*db_models.ItineraryVersion, error) {
	var version db_models.ItineraryVersion
	err := r.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Order("version_number DESC").
		First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &version, nil
}
