package request_models

type RestoreVersionRequest struct {
	ItineraryID       string `json:"itineraryId" binding:"required"`
	VersionNumber     int    `json:"versionNumber" binding:"required,gt=0"`
	ChangeDescription string `json:"changeDescription"`
}
