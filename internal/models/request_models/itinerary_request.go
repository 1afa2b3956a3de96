package request_models

import (
	"encoding/json"

	"voyago/internal/schedule"
)

type PreferencesPayload struct {
	PacePreference      string   `json:"pacePreference"`
	AccommodationType   string   `json:"accommodationType"`
	TransportationType  string   `json:"transportationType"`
	ActivityPreferences []string `json:"activityPreferences"`
	SpecialRequirements string   `json:"specialRequirements"`
}

type ChecklistItemPayload struct {
	Name    string `json:"name" binding:"required"`
	Checked bool   `json:"checked"`
}

type CreateItineraryRequest struct {
	Title        string              `json:"title" binding:"required"`
	Description  string              `json:"description"`
	StartDate    string              `json:"startDate" binding:"required"`
	EndDate      string              `json:"endDate" binding:"required"`
	Destinations []string            `json:"destinations"`
	TotalBudget  float64             `json:"totalBudget"`
	IsShared     bool                `json:"isShared"`
	Preferences  *PreferencesPayload `json:"preferences"`

	// Either shape is accepted on create; dailyPlans may arrive as the keyed
	// string format straight from a generated plan.
	ItineraryDays []schedule.Day  `json:"itineraryDays"`
	DailyPlans    json.RawMessage `json:"dailyPlans"`

	Checklist []ChecklistItemPayload `json:"checklist"`
}

// UpdateItineraryRequest carries partial payloads: basic-info saves send most
// fields, budget sync sends only totalBudget, schedule saves send only
// dailyPlans or itineraryDays. Pointers distinguish absent from zero.
type UpdateItineraryRequest struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	StartDate    *string             `json:"startDate"`
	EndDate      *string             `json:"endDate"`
	Destinations []string            `json:"destinations"`
	TotalBudget  *float64            `json:"totalBudget"`
	IsShared     *bool               `json:"isShared"`
	Preferences  *PreferencesPayload `json:"preferences"`

	ItineraryDays []schedule.Day  `json:"itineraryDays"`
	DailyPlans    json.RawMessage `json:"dailyPlans"`

	Checklist []ChecklistItemPayload `json:"checklist"`
}

// Versioning options ride in query parameters, not the entity payload; the
// command type makes that side channel explicit.
type VersioningOptions struct {
	CreateNewVersion bool
	Message          string
}

type UpdateItineraryCommand struct {
	Payload    UpdateItineraryRequest
	Versioning VersioningOptions
}

type GenerateItineraryRequest struct {
	Destination string              `json:"destination" binding:"required"`
	StartDate   string              `json:"startDate" binding:"required"`
	EndDate     string              `json:"endDate" binding:"required"`
	TotalBudget float64             `json:"totalBudget"`
	Preferences *PreferencesPayload `json:"preferences"`
}

type ManageCollaboratorsRequest struct {
	// CollaboratorID is a user id or an email; legacy call sites use both.
	CollaboratorID string `json:"collaboratorId" binding:"required"`
	Action         string `json:"action" binding:"required,oneof=add remove"`
}

type PermissionsPayload struct {
	CanView           bool `json:"canView"`
	CanEdit           bool `json:"canEdit"`
	CanManageBudget   bool `json:"canManageBudget"`
	CanManageSchedule bool `json:"canManageSchedule"`
	CanInviteOthers   bool `json:"canInviteOthers"`
}

type UpdatePermissionsRequest struct {
	Permissions PermissionsPayload `json:"permissions"`
}

type AcceptInviteRequest struct {
	Token string `json:"token" binding:"required"`
}
