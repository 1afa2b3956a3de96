package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/presence"
	"voyago/internal/repositories"
	"voyago/internal/schedule"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

const inviteTokenTTL = 7 * 24 * time.Hour

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, ownerID string, request request_models.CreateItineraryRequest) (*response_models.ItineraryDetailResponse, error)
	GetItinerary(ctx context.Context, userID, itineraryID string) (*response_models.ItineraryDetailResponse, error)
	ListMyItineraries(ctx context.Context, userID string, page, pageSize int) ([]response_models.ItinerarySummaryResponse, error)
	ListSharedItineraries(ctx context.Context, userID string, page, pageSize int) ([]response_models.ItinerarySummaryResponse, error)
	UpdateItinerary(ctx context.Context, userID, itineraryID string, command request_models.UpdateItineraryCommand) (*response_models.ItineraryDetailResponse, error)
	DeleteItinerary(ctx context.Context, userID, itineraryID string) error

	ManageCollaborators(ctx context.Context, userID, itineraryID string, request request_models.ManageCollaboratorsRequest) (*response_models.ItineraryDetailResponse, error)
	UpdatePermissions(ctx context.Context, userID, itineraryID, collaboratorID string, request request_models.UpdatePermissionsRequest) error
	AcceptInvite(ctx context.Context, userID string, request request_models.AcceptInviteRequest) error
}

type ItineraryService struct {
	itineraryRepo   repositories.ItineraryRepository
	accountRepo     repositories.AccountRepository
	destinationRepo repositories.DestinationRepository
	versionRepo     repositories.VersionRepository
	inviteTokens    mem.TokenStore
	mailService     MailServiceInterface
	hub             *presence.Hub
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	accountRepo repositories.AccountRepository,
	destinationRepo repositories.DestinationRepository,
	versionRepo repositories.VersionRepository,
	inviteTokens mem.TokenStore,
	mailService MailServiceInterface,
	hub *presence.Hub,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo:   itineraryRepo,
		accountRepo:     accountRepo,
		destinationRepo: destinationRepo,
		versionRepo:     versionRepo,
		inviteTokens:    inviteTokens,
		mailService:     mailService,
		hub:             hub,
	}
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, ownerID string, request request_models.CreateItineraryRequest) (*response_models.ItineraryDetailResponse, error) {
	owner, err := s.accountRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if owner == nil {
		return nil, utils.ErrAccountNotFound
	}

	days := schedule.Normalize(request.ItineraryDays, request.DailyPlans)
	days = assignActivityIDs(days)

	encoded, err := schedule.EncodeDailyPlans(days)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	itinerary := &db_models.Itinerary{
		OwnerID:      owner.ID,
		Title:        request.Title,
		Description:  request.Description,
		StartDate:    request.StartDate,
		EndDate:      request.EndDate,
		Duration:     utils.DurationDays(request.StartDate, request.EndDate),
		TotalBudget:  request.TotalBudget,
		IsShared:     request.IsShared,
		Destinations: request.Destinations,
		DailyPlans:   encoded,
	}
	applyPreferences(itinerary, request.Preferences)

	if err := s.itineraryRepo.Insert(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if len(request.Checklist) > 0 {
		items := make([]db_models.ChecklistItem, 0, len(request.Checklist))
		for i, item := range request.Checklist {
			items = append(items, db_models.ChecklistItem{
				ItineraryID: itinerary.ID,
				Name:        item.Name,
				Checked:     item.Checked,
				Position:    i,
			})
		}
		if err := s.itineraryRepo.ReplaceChecklist(ctx, itinerary.ID, items); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return s.GetItinerary(ctx, ownerID, itinerary.ID.String())
}

func (s *ItineraryService) GetItinerary(ctx context.Context, userID, itineraryID string) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	perms := permissionsFor(itinerary, userID)
	if !perms.CanView {
		return nil, utils.ErrPermissionDenied
	}

	return s.toDetailResponse(ctx, itinerary), nil
}

func (s *ItineraryService) ListMyItineraries(ctx context.Context, userID string, page, pageSize int) ([]response_models.ItinerarySummaryResponse, error) {
	if err := validatePagination(page, pageSize); err != nil {
		return nil, err
	}

	owned, err := s.itineraryRepo.ListByOwner(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toSummaryResponses(owned), nil
}

func (s *ItineraryService) ListSharedItineraries(ctx context.Context, userID string, page, pageSize int) ([]response_models.ItinerarySummaryResponse, error) {
	if err := validatePagination(page, pageSize); err != nil {
		return nil, err
	}

	shared, err := s.itineraryRepo.ListByCollaborator(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toSummaryResponses(shared), nil
}

func validatePagination(page, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return utils.ErrInvalidPageSize
	}
	return nil
}

func toSummaryResponses(itineraries []db_models.Itinerary) []response_models.ItinerarySummaryResponse {
	summaries := make([]response_models.ItinerarySummaryResponse, 0, len(itineraries))
	for _, it := range itineraries {
		summaries = append(summaries, toSummaryResponse(&it))
	}
	return summaries
}

func (s *ItineraryService) UpdateItinerary(ctx context.Context, userID, itineraryID string, command request_models.UpdateItineraryCommand) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	perms := permissionsFor(itinerary, userID)
	request := command.Payload

	scheduleTouched := request.ItineraryDays != nil || len(request.DailyPlans) > 0
	budgetTouched := request.TotalBudget != nil
	basicsTouched := request.Title != nil || request.Description != nil ||
		request.StartDate != nil || request.EndDate != nil ||
		request.Destinations != nil || request.IsShared != nil ||
		request.Preferences != nil || request.Checklist != nil

	if basicsTouched && !perms.CanEdit {
		return nil, utils.ErrPermissionDenied
	}
	if budgetTouched && !perms.CanEdit && !perms.CanManageBudget {
		return nil, utils.ErrPermissionDenied
	}
	if scheduleTouched && !perms.CanEdit && !perms.CanManageSchedule {
		return nil, utils.ErrPermissionDenied
	}

	if request.Title != nil {
		itinerary.Title = *request.Title
	}
	if request.Description != nil {
		itinerary.Description = *request.Description
	}
	if request.StartDate != nil {
		itinerary.StartDate = *request.StartDate
	}
	if request.EndDate != nil {
		itinerary.EndDate = *request.EndDate
	}
	if request.StartDate != nil || request.EndDate != nil {
		itinerary.Duration = utils.DurationDays(itinerary.StartDate, itinerary.EndDate)
	}
	if request.Destinations != nil {
		itinerary.Destinations = request.Destinations
	}
	if request.TotalBudget != nil {
		itinerary.TotalBudget = *request.TotalBudget
	}
	if request.IsShared != nil {
		itinerary.IsShared = *request.IsShared
	}
	applyPreferences(itinerary, request.Preferences)

	if scheduleTouched {
		days := schedule.Normalize(request.ItineraryDays, request.DailyPlans)
		days = assignActivityIDs(days)
		encoded, err := schedule.EncodeDailyPlans(days)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		itinerary.DailyPlans = encoded
	}

	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if request.Checklist != nil {
		items := make([]db_models.ChecklistItem, 0, len(request.Checklist))
		for i, item := range request.Checklist {
			items = append(items, db_models.ChecklistItem{
				ItineraryID: itinerary.ID,
				Name:        item.Name,
				Checked:     item.Checked,
				Position:    i,
			})
		}
		if err := s.itineraryRepo.ReplaceChecklist(ctx, itinerary.ID, items); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	if command.Versioning.CreateNewVersion {
		if err := s.snapshotVersion(ctx, itinerary, userID, command.Versioning.Message); err != nil {
			log.Printf("snapshotting itinerary %s failed: %v", itinerary.ID, err)
		}
	}

	if s.hub != nil {
		section := ""
		if scheduleTouched {
			section = "schedule"
		}
		s.hub.Broadcast(itineraryID, presence.Event{
			Type:      "updated",
			UserID:    userID,
			Section:   section,
			Timestamp: time.Now().Unix(),
		})
	}

	return s.GetItinerary(ctx, userID, itineraryID)
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, userID, itineraryID string) error {
	itinerary, err := s.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if itinerary == nil {
		return utils.ErrItineraryNotFound
	}
	if itinerary.OwnerID.String() != userID {
		return utils.ErrPermissionDenied
	}
	return s.itineraryRepo.Delete(ctx, itineraryID)
}

func (s *ItineraryService) ManageCollaborators(ctx context.Context, userID, itineraryID string, request request_models.ManageCollaboratorsRequest) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	perms := permissionsFor(itinerary, userID)
	if itinerary.OwnerID.String() != userID && !perms.CanInviteOthers {
		return nil, utils.ErrPermissionDenied
	}

	switch request.Action {
	case "add":
		err = s.addCollaborator(ctx, itinerary, request.CollaboratorID)
	case "remove":
		err = s.removeCollaborator(ctx, itinerary, request.CollaboratorID)
	default:
		err = utils.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}

	return s.GetItinerary(ctx, userID, itineraryID)
}

// addCollaborator resolves the identifier as a user id first, then an email.
// An email with no matching account becomes a pending invite row plus a mail.
func (s *ItineraryService) addCollaborator(ctx context.Context, itinerary *db_models.Itinerary, identifier string) error {
	var account *db_models.Account
	var err error

	if id, parseErr := uuid.Parse(identifier); parseErr == nil {
		account, err = s.accountRepo.FindByID(ctx, id.String())
	} else if strings.Contains(identifier, "@") {
		account, err = s.accountRepo.FindByEmail(ctx, identifier)
	} else {
		return utils.ErrInvalidInput
	}
	if err != nil {
		return utils.ErrDatabaseError
	}

	if account != nil {
		if account.ID == itinerary.OwnerID {
			return utils.ErrCollaboratorExists
		}
		existing, err := s.itineraryRepo.FindCollaboratorByUser(ctx, itinerary.ID, account.ID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if existing != nil {
			return utils.ErrCollaboratorExists
		}
		collaborator := &db_models.Collaborator{
			ItineraryID: itinerary.ID,
			UserID:      &account.ID,
			Username:    account.Username,
			Email:       account.Email,
		}
		db_models.DefaultPermissions(collaborator)
		return s.itineraryRepo.AddCollaborator(ctx, collaborator)
	}

	if !strings.Contains(identifier, "@") {
		return utils.ErrAccountNotFound
	}

	existing, err := s.itineraryRepo.FindCollaboratorByEmail(ctx, itinerary.ID, identifier)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrCollaboratorExists
	}

	collaborator := &db_models.Collaborator{
		ItineraryID: itinerary.ID,
		Email:       identifier,
	}
	db_models.DefaultPermissions(collaborator)
	if err := s.itineraryRepo.AddCollaborator(ctx, collaborator); err != nil {
		return utils.ErrDatabaseError
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	s.inviteTokens.Set(token, collaborator.ID.String(), inviteTokenTTL)

	if err := s.mailService.SendInvite(identifier, itinerary.Title, token); err != nil {
		log.Printf("sending invite to %s failed: %v", identifier, err)
	}
	return nil
}

func (s *ItineraryService) removeCollaborator(ctx context.Context, itinerary *db_models.Itinerary, identifier string) error {
	var collaborator *db_models.Collaborator
	var err error

	if id, parseErr := uuid.Parse(identifier); parseErr == nil {
		collaborator, err = s.itineraryRepo.FindCollaboratorByUser(ctx, itinerary.ID, id)
	} else if strings.Contains(identifier, "@") {
		collaborator, err = s.itineraryRepo.FindCollaboratorByEmail(ctx, itinerary.ID, identifier)
	} else {
		return utils.ErrInvalidInput
	}
	if err != nil {
		return utils.ErrDatabaseError
	}
	if collaborator == nil {
		return utils.ErrAccountNotFound
	}
	return s.itineraryRepo.RemoveCollaborator(ctx, collaborator.ID)
}

func (s *ItineraryService) UpdatePermissions(ctx context.Context, userID, itineraryID, collaboratorID string, request request_models.UpdatePermissionsRequest) error {
	itinerary, err := s.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if itinerary == nil {
		return utils.ErrItineraryNotFound
	}
	if itinerary.OwnerID.String() != userID {
		return utils.ErrPermissionDenied
	}

	targetID, err := uuid.Parse(collaboratorID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	var target *db_models.Collaborator
	for i := range itinerary.Collaborators {
		c := &itinerary.Collaborators[i]
		if c.ID == targetID || (c.UserID != nil && *c.UserID == targetID) {
			target = c
			break
		}
	}
	if target == nil {
		return utils.ErrAccountNotFound
	}

	target.CanView = request.Permissions.CanView
	target.CanEdit = request.Permissions.CanEdit
	target.CanManageBudget = request.Permissions.CanManageBudget
	target.CanManageSchedule = request.Permissions.CanManageSchedule
	target.CanInviteOthers = request.Permissions.CanInviteOthers

	return s.itineraryRepo.UpdateCollaborator(ctx, target)
}

func (s *ItineraryService) AcceptInvite(ctx context.Context, userID string, request request_models.AcceptInviteRequest) error {
	collaboratorID := s.inviteTokens.Consume(request.Token)
	if collaboratorID == "" {
		return utils.ErrInvalidInviteToken
	}

	account, err := s.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	id, err := uuid.Parse(collaboratorID)
	if err != nil {
		return utils.ErrInvalidInviteToken
	}

	collaborator, err := s.itineraryRepo.FindCollaboratorByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if collaborator == nil {
		return utils.ErrInvalidInviteToken
	}

	// Only the claimable fields change; the permission columns stay as set.
	collaborator.UserID = &account.ID
	collaborator.Username = account.Username
	return s.itineraryRepo.UpdateCollaborator(ctx, collaborator)
}

// snapshotVersion freezes the itinerary's editable fields as a JSON blob.
func (s *ItineraryService) snapshotVersion(ctx context.Context, itinerary *db_models.Itinerary, userID, message string) error {
	creatorID, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	data, err := json.Marshal(versionSnapshot{
		Title:        itinerary.Title,
		Description:  itinerary.Description,
		StartDate:    itinerary.StartDate,
		EndDate:      itinerary.EndDate,
		Destinations: itinerary.Destinations,
		TotalBudget:  itinerary.TotalBudget,
		DailyPlans:   itinerary.DailyPlans,
	})
	if err != nil {
		return err
	}

	number, err := s.versionRepo.NextVersionNumber(ctx, itinerary.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if message == "" {
		message = "Manual save"
	}

	return s.versionRepo.Insert(ctx, &db_models.ItineraryVersion{
		ItineraryID:       itinerary.ID,
		VersionNumber:     number,
		Data:              datatypes.JSON(data),
		ChangeDescription: message,
		CreatedByID:       creatorID,
	})
}

type versionSnapshot struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Destinations []string `json:"destinations"`
	TotalBudget  float64  `json:"totalBudget"`
	DailyPlans   string   `json:"dailyPlans"`
}

func (s *ItineraryService) toDetailResponse(ctx context.Context, itinerary *db_models.Itinerary) *response_models.ItineraryDetailResponse {
	days := schedule.Normalize(nil, json.RawMessage(itinerary.DailyPlans))
	calendar := schedule.MergeDays(itinerary.StartDate, itinerary.EndDate, days)

	resp := &response_models.ItineraryDetailResponse{
		ID:            itinerary.ID.String(),
		Title:         itinerary.Title,
		Description:   itinerary.Description,
		StartDate:     itinerary.StartDate,
		EndDate:       itinerary.EndDate,
		Duration:      itinerary.Duration,
		TotalBudget:   itinerary.TotalBudget,
		IsShared:      itinerary.IsShared,
		Destinations:  itinerary.Destinations,
		ItineraryDays: days,
		CalendarDays:  calendar,
		Preferences: response_models.PreferencesResponse{
			PacePreference:      itinerary.PacePreference,
			AccommodationType:   itinerary.AccommodationType,
			TransportationType:  itinerary.TransportationType,
			ActivityPreferences: itinerary.ActivityPreferences,
			SpecialRequirements: itinerary.SpecialRequirements,
		},
		Collaborators: make([]response_models.CollaboratorResponse, 0, len(itinerary.Collaborators)),
		Checklist:     make([]response_models.ChecklistItemResponse, 0, len(itinerary.Checklist)),
		CreatedBy: response_models.CreatorResponse{
			ID:       itinerary.OwnerID.String(),
			Username: itinerary.Owner.Username,
		},
		CreatedAt: itinerary.CreatedAt,
		UpdatedAt: itinerary.UpdatedAt,
	}

	for _, c := range itinerary.Collaborators {
		resp.Collaborators = append(resp.Collaborators, toCollaboratorResponse(&c))
	}
	for _, item := range itinerary.Checklist {
		resp.Checklist = append(resp.Checklist, response_models.ChecklistItemResponse{
			ID:      item.ID.String(),
			Name:    item.Name,
			Checked: item.Checked,
		})
	}

	resp.DestinationsData = s.resolveDestinations(ctx, itinerary.Destinations)
	return resp
}

// resolveDestinations enriches the stored destination ids with full records.
// Missing ids are skipped rather than failing the whole read.
func (s *ItineraryService) resolveDestinations(ctx context.Context, ids []string) []response_models.DestinationResponse {
	if len(ids) == 0 {
		return nil
	}
	destinations, err := s.destinationRepo.FindByIDs(ctx, ids)
	if err != nil {
		log.Printf("resolving destinations failed: %v", err)
		return nil
	}

	byID := make(map[string]*db_models.Destination, len(destinations))
	for i := range destinations {
		byID[destinations[i].ID.String()] = &destinations[i]
	}

	resolved := make([]response_models.DestinationResponse, 0, len(ids))
	for _, id := range ids {
		d, ok := byID[id]
		if !ok {
			log.Printf("destination %s referenced but not found, skipping", id)
			continue
		}
		resolved = append(resolved, toDestinationResponse(d))
	}
	return resolved
}

func toSummaryResponse(itinerary *db_models.Itinerary) response_models.ItinerarySummaryResponse {
	return response_models.ItinerarySummaryResponse{
		ID:           itinerary.ID.String(),
		Title:        itinerary.Title,
		StartDate:    itinerary.StartDate,
		EndDate:      itinerary.EndDate,
		Duration:     itinerary.Duration,
		TotalBudget:  itinerary.TotalBudget,
		IsShared:     itinerary.IsShared,
		Destinations: itinerary.Destinations,
	}
}

func toCollaboratorResponse(c *db_models.Collaborator) response_models.CollaboratorResponse {
	resp := response_models.CollaboratorResponse{
		ID:       c.ID.String(),
		Username: c.Username,
		Email:    c.Email,
		Permissions: response_models.Permissions{
			CanView:           c.CanView,
			CanEdit:           c.CanEdit,
			CanManageBudget:   c.CanManageBudget,
			CanManageSchedule: c.CanManageSchedule,
			CanInviteOthers:   c.CanInviteOthers,
		},
	}
	if c.UserID != nil {
		resp.UserID = c.UserID.String()
	}
	return resp
}

// permissionsFor computes the caller's effective permissions: owners hold
// everything, collaborators what their row grants, strangers view on shared
// trips only.
func permissionsFor(itinerary *db_models.Itinerary, userID string) response_models.Permissions {
	if itinerary.OwnerID.String() == userID {
		return response_models.Permissions{
			CanView:           true,
			CanEdit:           true,
			CanManageBudget:   true,
			CanManageSchedule: true,
			CanInviteOthers:   true,
		}
	}
	for _, c := range itinerary.Collaborators {
		if c.UserID != nil && c.UserID.String() == userID {
			return response_models.Permissions{
				CanView:           c.CanView,
				CanEdit:           c.CanEdit,
				CanManageBudget:   c.CanManageBudget,
				CanManageSchedule: c.CanManageSchedule,
				CanInviteOthers:   c.CanInviteOthers,
			}
		}
	}
	if itinerary.IsShared {
		return response_models.Permissions{CanView: true}
	}
	return response_models.Permissions{}
}

func applyPreferences(itinerary *db_models.Itinerary, p *request_models.PreferencesPayload) {
	if p == nil {
		return
	}
	itinerary.PacePreference = p.PacePreference
	itinerary.AccommodationType = p.AccommodationType
	itinerary.TransportationType = p.TransportationType
	itinerary.ActivityPreferences = p.ActivityPreferences
	itinerary.SpecialRequirements = p.SpecialRequirements
}

// assignActivityIDs gives every activity without an id a synthetic one so
// later edits can address activities by id instead of (title, timeStart).
func assignActivityIDs(days []schedule.Day) []schedule.Day {
	for i := range days {
		for j := range days[i].Activities {
			if days[i].Activities[j].ID == "" {
				days[i].Activities[j].ID = uuid.NewString()
			}
		}
	}
	return days
}
