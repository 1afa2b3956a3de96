package request_models

type ExpensePayload struct {
	ID          string  `json:"id"`
	Title       string  `json:"title" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

type CreateOrUpdateBudgetRequest struct {
	TotalBudget float64          `json:"totalBudget" binding:"gte=0"`
	Expenses    []ExpensePayload `json:"expenses"`
}
