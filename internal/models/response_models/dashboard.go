package response_models

type DashboardResponse struct {
	TotalItineraries int     `json:"totalItineraries"`
	Collaborations   int     `json:"collaborations"`
	UpcomingTrips    int     `json:"upcomingTrips"`
	TotalBudget      float64 `json:"totalBudget"`
	TotalSpent       float64 `json:"totalSpent"`

	NextTrip *ItinerarySummaryResponse `json:"nextTrip,omitempty"`
}
