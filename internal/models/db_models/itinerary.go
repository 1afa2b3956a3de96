package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Itinerary struct {
	BaseModel
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	Owner       Account   `gorm:"foreignKey:OwnerID"`
	Title       string
	Description string

	// Calendar dates in the wire format the SPA exchanges (YYYY-MM-DD).
	StartDate string
	EndDate   string
	Duration  int

	TotalBudget float64
	IsShared    bool

	// Destination ids referenced by this trip; resolved to full records by
	// the enrichment helper on read.
	Destinations pq.StringArray `gorm:"type:text[]"`

	// Day-by-day plan in the legacy keyed-map string format
	// ({"day1":{date,activities},...}), possibly double-encoded in old rows.
	// Always written through schedule.EncodeDailyPlans.
	DailyPlans string `gorm:"type:text"`

	PacePreference      string
	AccommodationType   string
	TransportationType  string
	ActivityPreferences pq.StringArray `gorm:"type:text[]"`
	SpecialRequirements string

	Collaborators []Collaborator  `gorm:"foreignKey:ItineraryID"`
	Checklist     []ChecklistItem `gorm:"foreignKey:ItineraryID"`
}

type ChecklistItem struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Checked     bool
	Position    int
}
