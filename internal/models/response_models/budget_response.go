package response_models

type ExpenseResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

type CategoryStat struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

// BudgetResponse carries the stored budget plus the derived figures the SPA
// used to compute client-side; they are never persisted.
type BudgetResponse struct {
	ItineraryID  string            `json:"itineraryId"`
	TotalBudget  float64           `json:"totalBudget"`
	Expenses     []ExpenseResponse `json:"expenses"`
	TotalSpent   float64           `json:"totalSpent"`
	Remaining    float64           `json:"remaining"`
	UsagePercent int               `json:"usagePercent"`
	CategoryStats []CategoryStat    `json:"categoryStats"`
}
