package db_models

type Account struct {
	BaseModel
	Username     string
	Email        string `gorm:"unique"`
	PasswordHash string

	// Travel preferences shown on the profile page.
	TravelStyle string
	BudgetLevel string

	Itineraries []Itinerary `gorm:"foreignKey:OwnerID"`
}
