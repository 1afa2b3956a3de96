package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type VersionController struct {
	versionService services.VersionServiceInterface
}

func NewVersionController(versionService services.VersionServiceInterface) *VersionController {
	return &VersionController{
		versionService: versionService,
	}
}

// ListVersions godoc
// @Summary List itinerary versions
// @Description Fetch the version history, newest first
// @Tags Versions
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id}/versions [get]
func (v *VersionController) ListVersions(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	userID := c.GetString("user_id")

	versions, err := v.versionService.ListVersions(c.Request.Context(), userID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, versions, "Versions fetched successfully")
}

// GetVersionData godoc
// @Summary Get a version snapshot
// @Description Fetch a stored snapshot with its schedule normalized
// @Tags Versions
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param number path string true "Version number, or \"latest\""
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id}/versions/{number} [get]
func (v *VersionController) GetVersionData(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	userID := c.GetString("user_id")

	if c.Param("number") == "latest" {
		data, err := v.versionService.GetLatestVersion(c.Request.Context(), userID, id)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, data, "Version fetched successfully")
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid version number")
		return
	}

	data, err := v.versionService.GetVersionData(c.Request.Context(), userID, id, number)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, data, "Version fetched successfully")
}

// RestoreVersion godoc
// @Summary Restore a version
// @Description Apply a snapshot back onto the itinerary; the restore itself becomes a new version
// @Tags Versions
// @Accept json
// @Produce json
// @Param request body request_models.RestoreVersionRequest true "Restore payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/versions/restore [post]
func (v *VersionController) RestoreVersion(c *gin.Context) {
	var req request_models.RestoreVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	itinerary, err := v.versionService.RestoreVersion(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Version restored successfully")
}
