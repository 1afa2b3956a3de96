package db_models

import "github.com/google/uuid"

// Collaborator grants a secondary user a permission subset on an itinerary.
// UserID is nil while the invited email has no account yet.
type Collaborator struct {
	BaseModel
	ItineraryID uuid.UUID  `gorm:"type:uuid;index"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	Username    string
	Email       string `gorm:"index"`

	CanView           bool
	CanEdit           bool
	CanManageBudget   bool
	CanManageSchedule bool
	CanInviteOthers   bool
}

// DefaultPermissions is what a freshly added collaborator gets: view only.
func DefaultPermissions(c *Collaborator) {
	c.CanView = true
	c.CanEdit = false
	c.CanManageBudget = false
	c.CanManageSchedule = false
	c.CanInviteOthers = false
}
