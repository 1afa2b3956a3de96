package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	generatorService services.GeneratorServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	generatorService services.GeneratorServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		generatorService: generatorService,
	}
}

// CreateItinerary godoc
// @Summary Create an itinerary
// @Description Create a new itinerary; the schedule may arrive as itineraryDays or a dailyPlans string
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Itinerary payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (i *ItineraryController) CreateItinerary(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	itinerary, err := i.itineraryService.CreateItinerary(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary created successfully")
}

// GetItinerary godoc
// @Summary Get itinerary details
// @Description Fetch an itinerary with its normalized schedule and calendar days
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	userID := c.GetString("user_id")

	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), userID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// ListMyItineraries godoc
// @Summary List owned itineraries
// @Description Fetch a paginated list of the caller's own itineraries
// @Tags Itineraries
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/my [get]
func (i *ItineraryController) ListMyItineraries(c *gin.Context) {
	page, pageSize, ok := paginationParams(c)
	if !ok {
		return
	}

	userID := c.GetString("user_id")

	itineraries, err := i.itineraryService.ListMyItineraries(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// ListSharedItineraries godoc
// @Summary List collaborative itineraries
// @Description Fetch a paginated list of itineraries shared with the caller
// @Tags Itineraries
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/collaborative [get]
func (i *ItineraryController) ListSharedItineraries(c *gin.Context) {
	page, pageSize, ok := paginationParams(c)
	if !ok {
		return
	}

	userID := c.GetString("user_id")

	itineraries, err := i.itineraryService.ListSharedItineraries(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

func paginationParams(c *gin.Context) (page, pageSize int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err = strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, pageSize, true
}

// UpdateItinerary godoc
// @Summary Update an itinerary
// @Description Apply a partial update; createNewVersion and versionMessage query params control snapshotting
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param createNewVersion query bool false "Record a version snapshot after saving"
// @Param versionMessage query string false "Snapshot description"
// @Param request body request_models.UpdateItineraryRequest true "Partial itinerary payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [put]
func (i *ItineraryController) UpdateItinerary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	var req request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	command := request_models.UpdateItineraryCommand{
		Payload: req,
		Versioning: request_models.VersioningOptions{
			CreateNewVersion: c.Query("createNewVersion") == "true",
			Message:          c.Query("versionMessage"),
		},
	}

	userID := c.GetString("user_id")

	itinerary, err := i.itineraryService.UpdateItinerary(c.Request.Context(), userID, id, command)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary updated successfully")
}

// DeleteItinerary godoc
// @Summary Delete an itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [delete]
func (i *ItineraryController) DeleteItinerary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	userID := c.GetString("user_id")

	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), userID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

// ManageCollaborators godoc
// @Summary Add or remove a collaborator
// @Description Accepts a user id or an email; unknown emails get a pending invite
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.ManageCollaboratorsRequest true "Collaborator action payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id}/collaborators [post]
func (i *ItineraryController) ManageCollaborators(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	var req request_models.ManageCollaboratorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	itinerary, err := i.itineraryService.ManageCollaborators(c.Request.Context(), userID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Collaborators updated successfully")
}

// UpdatePermissions godoc
// @Summary Update a collaborator's permissions
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param collaboratorId path string true "Collaborator ID"
// @Param request body request_models.UpdatePermissionsRequest true "Permissions payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id}/collaborators/{collaboratorId}/permissions [put]
func (i *ItineraryController) UpdatePermissions(c *gin.Context) {
	id := c.Param("id")
	collaboratorID := c.Param("collaboratorId")
	if id == "" || collaboratorID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary and collaborator IDs are required")
		return
	}

	var req request_models.UpdatePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	if err := i.itineraryService.UpdatePermissions(c.Request.Context(), userID, id, collaboratorID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Permissions updated successfully")
}

// AcceptInvite godoc
// @Summary Accept a collaboration invite
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.AcceptInviteRequest true "Invite token payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/invites/accept [post]
func (i *ItineraryController) AcceptInvite(c *gin.Context) {
	var req request_models.AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	if err := i.itineraryService.AcceptInvite(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Invite accepted successfully")
}

// GenerateItinerary godoc
// @Summary Generate an itinerary
// @Description Generate a day-by-day plan for a destination and save it as a new itinerary
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	itinerary, err := i.generatorService.GenerateItinerary(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}
