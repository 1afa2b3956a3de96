package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type DestinationRepository interface {
	Insert(ctx context.Context, destination *db_models.Destination) error
	FindByID(ctx context.Context, id string) (*db_models.Destination, error)
	FindByIDs(ctx context.Context, ids []string) ([]db_models.Destination, error)
	List(ctx context.Context, search, category string, page, pageSize int) ([]db_models.Destination, error)
	Update(ctx context.Context, destination *db_models.Destination) error
	Delete(ctx context.Context, id string) error
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Insert(ctx context.Context, destination *db_models.Destination) error {
	return r.db.WithContext(ctx).Create(destination).Error
}

func (r *destinationRepository) FindByID(ctx context.Context, id string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) FindByIDs(ctx context.Context, ids []string) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	if len(ids) == 0 {
		return destinations, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) List(ctx context.Context, search, category string, page, pageSize int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	query := r.db.WithContext(ctx).Model(&db_models.Destination{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR country ILIKE ?", like, like)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) Update(ctx context.Context, destination *db_models.Destination) error {
	return r.db.WithContext(ctx).Save(destination).Error
}

func (r *destinationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("destination_id = ?", id).Delete(&db_models.DestinationEmbedding{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Destination{}, "id = ?", id).Error
	})
}
