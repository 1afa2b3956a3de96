package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type BudgetController struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetController(budgetService services.BudgetServiceInterface) *BudgetController {
	return &BudgetController{
		budgetService: budgetService,
	}
}

// GetBudget godoc
// @Summary Get an itinerary's budget
// @Description Fetch the budget with derived spend, remaining and category stats
// @Tags Budgets
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id}/budget [get]
func (b *BudgetController) GetBudget(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	userID := c.GetString("user_id")

	budget, err := b.budgetService.GetBudget(c.Request.Context(), userID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, budget, "Budget fetched successfully")
}

// SaveBudget godoc
// @Summary Create or update an itinerary's budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.CreateOrUpdateBudgetRequest true "Budget payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id}/budget [put]
func (b *BudgetController) SaveBudget(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	var req request_models.CreateOrUpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	budget, err := b.budgetService.SaveBudget(c.Request.Context(), userID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, budget, "Budget saved successfully")
}

// AddExpense godoc
// @Summary Add an expense
// @Tags Budgets
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.ExpensePayload true "Expense payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id}/budget/expenses [post]
func (b *BudgetController) AddExpense(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	var req request_models.ExpensePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	budget, err := b.budgetService.AddExpense(c.Request.Context(), userID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, budget, "Expense added successfully")
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags Budgets
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param expenseId path string true "Expense ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id}/budget/expenses/{expenseId} [delete]
func (b *BudgetController) DeleteExpense(c *gin.Context) {
	id := c.Param("id")
	expenseID := c.Param("expenseId")
	if id == "" || expenseID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary and expense IDs are required")
		return
	}

	userID := c.GetString("user_id")

	budget, err := b.budgetService.DeleteExpense(c.Request.Context(), userID, id, expenseID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, budget, "Expense deleted successfully")
}
