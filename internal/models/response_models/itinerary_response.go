package response_models

import "voyago/internal/schedule"

type CollaboratorResponse struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId,omitempty"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Permissions Permissions `json:"permissions"`
}

type Permissions struct {
	CanView           bool `json:"canView"`
	CanEdit           bool `json:"canEdit"`
	CanManageBudget   bool `json:"canManageBudget"`
	CanManageSchedule bool `json:"canManageSchedule"`
	CanInviteOthers   bool `json:"canInviteOthers"`
}

type ChecklistItemResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

type PreferencesResponse struct {
	PacePreference      string   `json:"pacePreference,omitempty"`
	AccommodationType   string   `json:"accommodationType,omitempty"`
	TransportationType  string   `json:"transportationType,omitempty"`
	ActivityPreferences []string `json:"activityPreferences,omitempty"`
	SpecialRequirements string   `json:"specialRequirements,omitempty"`
}

type ItinerarySummaryResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Duration     int      `json:"duration"`
	TotalBudget  float64  `json:"totalBudget"`
	IsShared     bool     `json:"isShared"`
	Destinations []string `json:"destinations"`
}

type CreatorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ItineraryDetailResponse always carries the normalized day list; the raw
// dailyPlans column never leaves the service layer unparsed. CalendarDays is
// the gap-filled expansion of the full date range for timeline rendering.
type ItineraryDetailResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Duration    int     `json:"duration"`
	TotalBudget float64 `json:"totalBudget"`
	IsShared    bool    `json:"isShared"`

	Destinations     []string              `json:"destinations"`
	DestinationsData []DestinationResponse `json:"destinationsData,omitempty"`

	ItineraryDays []schedule.Day `json:"itineraryDays"`
	CalendarDays  []schedule.Day `json:"calendarDays"`

	Preferences   PreferencesResponse     `json:"preferences"`
	Collaborators []CollaboratorResponse  `json:"collaborators"`
	Checklist     []ChecklistItemResponse `json:"checklist"`

	CreatedBy CreatorResponse `json:"createdBy"`
	CreatedAt int64           `json:"createdAt"`
	UpdatedAt int64           `json:"updatedAt"`
}
