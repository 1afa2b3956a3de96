package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ItineraryVersion is a full snapshot of an itinerary at save time. Data
// holds the serialized record including dailyPlans in the legacy string
// format, so serving a version needs the same schedule normalization as the
// live record.
type ItineraryVersion struct {
	BaseModel
	ItineraryID       uuid.UUID `gorm:"type:uuid;index:idx_itinerary_version,unique"`
	VersionNumber     int       `gorm:"index:idx_itinerary_version,unique"`
	Data              datatypes.JSON
	ChangeDescription string
	CreatedByID       uuid.UUID `gorm:"type:uuid"`
	CreatedBy         Account   `gorm:"foreignKey:CreatedByID"`
}
