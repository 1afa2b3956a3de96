package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// CreateDestination godoc
// @Summary Create a destination
// @Tags Destinations
// @Accept json
// @Produce json
// @Param request body request_models.SaveDestinationRequest true "Destination payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /destinations [post]
func (d *DestinationController) CreateDestination(c *gin.Context) {
	var req request_models.SaveDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	destination, err := d.destinationService.CreateDestination(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination created successfully")
}

// GetDestination godoc
// @Summary Get a destination by ID
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id} [get]
func (d *DestinationController) GetDestination(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	destination, err := d.destinationService.GetDestination(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}

// ListDestinations godoc
// @Summary List destinations
// @Description Fetch a paginated destination list, optionally filtered by search text and category
// @Tags Destinations
// @Produce json
// @Param search query string false "Name or country search"
// @Param category query string false "Category filter"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	destinations, err := d.destinationService.ListDestinations(
		c.Request.Context(), c.Query("search"), c.Query("category"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

// UpdateDestination godoc
// @Summary Update a destination
// @Tags Destinations
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param request body request_models.SaveDestinationRequest true "Destination payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /destinations/{id} [put]
func (d *DestinationController) UpdateDestination(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	var req request_models.SaveDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	destination, err := d.destinationService.UpdateDestination(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination updated successfully")
}

// DeleteDestination godoc
// @Summary Delete a destination
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /destinations/{id} [delete]
func (d *DestinationController) DeleteDestination(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	if err := d.destinationService.DeleteDestination(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Destination deleted successfully")
}

// RecommendDestinations godoc
// @Summary Recommend destinations
// @Description Return destinations ranked by similarity to the user's preferences
// @Tags Destinations
// @Accept json
// @Produce json
// @Param request body request_models.RecommendDestinationsRequest true "Preference payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /destinations/recommend [post]
func (d *DestinationController) RecommendDestinations(c *gin.Context) {
	var req request_models.RecommendDestinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	recommendations, err := d.destinationService.Recommend(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommendations, "Recommendations fetched successfully")
}
