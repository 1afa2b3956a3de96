package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type DashboardRepository interface {
	CountItineraries(ctx context.Context, ownerID string) (int64, error)
	CountUpcoming(ctx context.Context, ownerID, today string) (int64, error)
	CountSharedWith(ctx context.Context, userID string) (int64, error)
	SumExpenses(ctx context.Context, ownerID string) (float64, error)
	SumBudgets(ctx context.Context, ownerID string) (float64, error)
	NextTrip(ctx context.Context, ownerID, today string) (*db_models.Itinerary, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountItineraries(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Itinerary{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountUpcoming(ctx context.Context, ownerID, today string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Itinerary{}).
		Where("owner_id = ? AND start_date >= ?", ownerID, today).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountSharedWith(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Collaborator{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) SumExpenses(ctx context.Context, ownerID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&db_models.Expense{}).
		Joins("JOIN budgets ON budgets.id = expenses.budget_id").
		Joins("JOIN itineraries ON itineraries.id = budgets.itinerary_id").
		Where("itineraries.owner_id = ? AND expenses.deleted_at IS NULL", ownerID).
		Select("COALESCE(SUM(expenses.amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *dashboardRepository) SumBudgets(ctx context.Context, ownerID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&db_models.Itinerary{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(total_budget), 0)").
		Scan(&total).Error
	return total, err
}

func (r *dashboardRepository) NextTrip(ctx context.Context, ownerID, today string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND start_date >= ?", ownerID, today).
		Order("start_date ASC").
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}
