package request_models

type SaveDestinationRequest struct {
	Name        string `json:"name" binding:"required"`
	Country     string `json:"country" binding:"required"`
	City        string `json:"city"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type RecommendDestinationsRequest struct {
	Preferences struct {
		TravelStyle         string   `json:"travelStyle"`
		BudgetLevel         string   `json:"budgetLevel"`
		ActivityPreferences []string `json:"activityPreferences"`
		FreeText            string   `json:"freeText"`
	} `json:"preferences"`
	Limit int `json:"limit"`
}
