package response_models

import "voyago/internal/schedule"

type VersionInfoResponse struct {
	VersionNumber     int             `json:"versionNumber"`
	ChangeDescription string          `json:"changeDescription"`
	CreatedAt         int64           `json:"createdAt"`
	User              CreatorResponse `json:"user"`
}

// VersionDataResponse is a snapshot served back to the client. The schedule
// inside the stored blob goes through the same normalizer as live records.
type VersionDataResponse struct {
	VersionNumber int            `json:"versionNumber"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	Destinations  []string       `json:"destinations"`
	TotalBudget   float64        `json:"totalBudget"`
	ItineraryDays []schedule.Day `json:"itineraryDays"`
}
