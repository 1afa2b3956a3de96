package db_models

import "github.com/google/uuid"

type Budget struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	TotalBudget float64

	Expenses []Expense `gorm:"foreignKey:BudgetID"`
}

type Expense struct {
	BaseModel
	BudgetID    uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Amount      float64
	Category    string
	Date        string
	Description string
}

const (
	CategoryAccommodation  = "accommodation"
	CategoryFood           = "food"
	CategoryTransportation = "transportation"
	CategoryActivities     = "activities"
	CategoryShopping       = "shopping"
	CategoryOther          = "other"
)

var ExpenseCategories = []string{
	CategoryAccommodation,
	CategoryFood,
	CategoryTransportation,
	CategoryActivities,
	CategoryShopping,
	CategoryOther,
}

func IsValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}
