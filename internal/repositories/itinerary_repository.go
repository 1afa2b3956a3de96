package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *db_models.Itinerary) error
	FindByID(ctx context.Context, id string) (*db_models.Itinerary, error)
	ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]db_models.Itinerary, error)
	ListByCollaborator(ctx context.Context, userID string, page, pageSize int) ([]db_models.Itinerary, error)
	Update(ctx context.Context, itinerary *db_models.Itinerary) error
	Delete(ctx context.Context, id string) error

	ReplaceChecklist(ctx context.Context, itineraryID uuid.UUID, items []db_models.ChecklistItem) error

	AddCollaborator(ctx context.Context, collaborator *db_models.Collaborator) error
	FindCollaboratorByID(ctx context.Context, collaboratorID uuid.UUID) (*db_models.Collaborator, error)
	FindCollaboratorByUser(ctx context.Context, itineraryID, userID uuid.UUID) (*db_models.Collaborator, error)
	FindCollaboratorByEmail(ctx context.Context, itineraryID uuid.UUID, email string) (*db_models.Collaborator, error)
	UpdateCollaborator(ctx context.Context, collaborator *db_models.Collaborator) error
	RemoveCollaborator(ctx context.Context, collaboratorID uuid.UUID) error
	ClaimInvites(ctx context.Context, email string, userID uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) FindByID(ctx context.Context, id string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Collaborators").
		Preload("Checklist", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&itinerary, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("start_date ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) ListByCollaborator(ctx context.Context, userID string, page, pageSize int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Joins("JOIN collaborators ON collaborators.itinerary_id = itineraries.id").
		Where("collaborators.user_id = ? AND collaborators.deleted_at IS NULL", userID).
		Order("itineraries.start_date ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) Update(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Save(itinerary).Error
}

func (r *itineraryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("itinerary_id = ?", id).Delete(&db_models.Collaborator{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", id).Delete(&db_models.ChecklistItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Itinerary{}, "id = ?", id).Error
	})
}

func (r *itineraryRepository) ReplaceChecklist(ctx context.Context, itineraryID uuid.UUID, items []db_models.ChecklistItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("itinerary_id = ?", itineraryID).Delete(&db_models.ChecklistItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *itineraryRepository) AddCollaborator(ctx context.Context, collaborator *db_models.Collaborator) error {
	return r.db.WithContext(ctx).Create(collaborator).Error
}

func (r *itineraryRepository) FindCollaboratorByID(ctx context.Context, collaboratorID uuid.UUID) (*db_models.Collaborator, error) {
	var collaborator db_models.Collaborator
	err := r.db.WithContext(ctx).First(&collaborator, "id = ?", collaboratorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &collaborator, nil
}

func (r *itineraryRepository) FindCollaboratorByUser(ctx context.Context, itineraryID, userID uuid.UUID) (*db_models.Collaborator, error) {
	var collaborator db_models.Collaborator
	err := r.db.WithContext(ctx).
		Where("itinerary_id = ? AND user_id = ?", itineraryID, userID).
		First(&collaborator).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &collaborator, nil
}

func (r *itineraryRepository) FindCollaboratorByEmail(ctx context.Context, itineraryID uuid.UUID, email string) (*db_models.Collaborator, error) {
	var collaborator db_models.Collaborator
	err := r.db.WithContext(ctx).
		Where("itinerary_id = ? AND email = ?", itineraryID, email).
		First(&collaborator).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &collaborator, nil
}

func (r *itineraryRepository) UpdateCollaborator(ctx context.Context, collaborator *db_models.Collaborator) error {
	return r.db.WithContext(ctx).Save(collaborator).Error
}

func (r *itineraryRepository) RemoveCollaborator(ctx context.Context, collaboratorID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Collaborator{}, "id = ?", collaboratorID).Error
}

// ClaimInvites attaches a freshly registered account to any collaborator
// rows that were added by email before the user existed.
func (r *itineraryRepository) ClaimInvites(ctx context.Context, email string, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Collaborator{}).
		Where("email = ? AND user_id IS NULL", email).
		Update("user_id", userID).Error
}
