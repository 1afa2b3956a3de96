package response_models

type AccountResponse struct {
	ID          string             `json:"id"`
	Username    string             `json:"username"`
	Email       string             `json:"email"`
	Preferences AccountPreferences `json:"preferences"`
}

type AccountPreferences struct {
	TravelStyle string `json:"travelStyle"`
	BudgetLevel string `json:"budgetLevel"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}
