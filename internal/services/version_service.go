package services

import (
	"context"
	"encoding/json"
	"strconv"

	"gorm.io/datatypes"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/internal/schedule"
	"voyago/pkg/utils"
)

type VersionServiceInterface interface {
	ListVersions(ctx context.Context, userID, itineraryID string) ([]response_models.VersionInfoResponse, error)
	GetVersionData(ctx context.Context, userID, itineraryID string, versionNumber int) (*response_models.VersionDataResponse, error)
	GetLatestVersion(ctx context.Context, userID, itineraryID string) (*response_models.VersionDataResponse, error)
	RestoreVersion(ctx context.Context, userID string, request request_models.RestoreVersionRequest) (*response_models.ItineraryDetailResponse, error)
}

type VersionService struct {
	versionRepo      repositories.VersionRepository
	itineraryRepo    repositories.ItineraryRepository
	itineraryService ItineraryServiceInterface
}

func NewVersionService(
	versionRepo repositories.VersionRepository,
	itineraryRepo repositories.ItineraryRepository,
	itineraryService ItineraryServiceInterface,
) VersionServiceInterface {
	return &VersionService{
		versionRepo:      versionRepo,
		itineraryRepo:    itineraryRepo,
		itineraryService: itineraryService,
	}
}

func (v *VersionService) ListVersions(ctx context.Context, userID, itineraryID string) ([]response_models.VersionInfoResponse, error) {
	itinerary, err := v.authorize(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}

	versions, err := v.versionRepo.ListByItinerary(ctx, itinerary.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.VersionInfoResponse, 0, len(versions))
	for _, version := range versions {
		responses = append(responses, response_models.VersionInfoResponse{
			VersionNumber:     version.VersionNumber,
			ChangeDescription: version.ChangeDescription,
			CreatedAt:         version.CreatedAt,
			User: response_models.CreatorResponse{
				ID:       version.CreatedByID.String(),
				Username: version.CreatedBy.Username,
			},
		})
	}
	return responses, nil
}

func (v *VersionService) GetVersionData(ctx context.Context, userID, itineraryID string, versionNumber int) (*response_models.VersionDataResponse, error) {
	itinerary, err := v.authorize(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}

	version, err := v.versionRepo.FindByNumber(ctx, itinerary.ID, versionNumber)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if version == nil {
		return nil, utils.ErrVersionNotFound
	}

	return toVersionData(version)
}

func (v *VersionService) GetLatestVersion(ctx context.Context, userID, itineraryID string) (*response_models.VersionDataResponse, error) {
	itinerary, err := v.authorize(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}

	version, err := v.versionRepo.Latest(ctx, itinerary.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if version == nil {
		return nil, utils.ErrVersionNotFound
	}

	return toVersionData(version)
}

func toVersionData(version *db_models.ItineraryVersion) (*response_models.VersionDataResponse, error) {
	snapshot, err := decodeSnapshot(version.Data)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Old snapshots carry dailyPlans in whatever shape was current when they
	// were written, so they go through the full normalizer.
	days := schedule.Normalize(nil, json.RawMessage(snapshot.DailyPlans))

	return &response_models.VersionDataResponse{
		VersionNumber: version.VersionNumber,
		Title:         snapshot.Title,
		Description:   snapshot.Description,
		StartDate:     snapshot.StartDate,
		EndDate:       snapshot.EndDate,
		Destinations:  snapshot.Destinations,
		TotalBudget:   snapshot.TotalBudget,
		ItineraryDays: days,
	}, nil
}

// RestoreVersion applies a snapshot back onto the live record through the
// regular update path, which itself records the restore as a new version.
// History is append-only; nothing is rolled back or deleted.
func (v *VersionService) RestoreVersion(ctx context.Context, userID string, request request_models.RestoreVersionRequest) (*response_models.ItineraryDetailResponse, error) {
	data, err := v.GetVersionData(ctx, userID, request.ItineraryID, request.VersionNumber)
	if err != nil {
		return nil, err
	}

	message := request.ChangeDescription
	if message == "" {
		message = "Restored version " + strconv.Itoa(request.VersionNumber)
	}

	command := request_models.UpdateItineraryCommand{
		Payload: request_models.UpdateItineraryRequest{
			Title:         &data.Title,
			Description:   &data.Description,
			StartDate:     &data.StartDate,
			EndDate:       &data.EndDate,
			Destinations:  data.Destinations,
			TotalBudget:   &data.TotalBudget,
			ItineraryDays: data.ItineraryDays,
		},
		Versioning: request_models.VersioningOptions{
			CreateNewVersion: true,
			Message:          message,
		},
	}

	return v.itineraryService.UpdateItinerary(ctx, userID, request.ItineraryID, command)
}

func (v *VersionService) authorize(ctx context.Context, userID, itineraryID string) (*db_models.Itinerary, error) {
	itinerary, err := v.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if !permissionsFor(itinerary, userID).CanView {
		return nil, utils.ErrPermissionDenied
	}
	return itinerary, nil
}

func decodeSnapshot(data datatypes.JSON) (*versionSnapshot, error) {
	var snapshot versionSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

