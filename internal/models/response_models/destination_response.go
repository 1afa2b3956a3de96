package response_models

type DestinationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type RecommendedDestinationResponse struct {
	DestinationResponse
	Score float64 `json:"score"`
}
