package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type BudgetRepository interface {
	FindByItinerary(ctx context.Context, itineraryID uuid.UUID) (*db_models.Budget, error)
	Upsert(ctx context.Context, budget *db_models.Budget) error
	AddExpense(ctx context.Context, expense *db_models.Expense) error
	UpdateExpense(ctx context.Context, expense *db_models.Expense) error
	FindExpenseByID(ctx context.Context, expenseID uuid.UUID) (*db_models.Expense, error)
	DeleteExpense(ctx context.Context, expenseID uuid.UUID) error
}

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) FindByItinerary(ctx context.Context, itineraryID uuid.UUID) (*db_models.Budget, error) {
	var budget db_models.Budget
	err := r.db.WithContext(ctx).
		Preload("Expenses", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("itinerary_id = ?", itineraryID).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &budget, nil
}

func (r *budgetRepository) Upsert(ctx context.Context, budget *db_models.Budget) error {
	return r.db.WithContext(ctx).Save(budget).Error
}

func (r *budgetRepository) AddExpense(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *budgetRepository) UpdateExpense(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *budgetRepository) FindExpenseByID(ctx context.Context, expenseID uuid.UUID) (*db_models.Expense, error) {
	var expense db_models.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", expenseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *budgetRepository) DeleteExpense(ctx context.Context, expenseID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Expense{}, "id = ?", expenseID).Error
}
