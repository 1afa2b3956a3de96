package services

import (
	"context"
	"log"
	"math"

	"github.com/google/uuid"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type BudgetServiceInterface interface {
	GetBudget(ctx context.Context, userID, itineraryID string) (*response_models.BudgetResponse, error)
	SaveBudget(ctx context.Context, userID, itineraryID string, request request_models.CreateOrUpdateBudgetRequest) (*response_models.BudgetResponse, error)
	AddExpense(ctx context.Context, userID, itineraryID string, request request_models.ExpensePayload) (*response_models.BudgetResponse, error)
	DeleteExpense(ctx context.Context, userID, itineraryID, expenseID string) (*response_models.BudgetResponse, error)
}

type BudgetService struct {
	budgetRepo    repositories.BudgetRepository
	itineraryRepo repositories.ItineraryRepository
}

func NewBudgetService(
	budgetRepo repositories.BudgetRepository,
	itineraryRepo repositories.ItineraryRepository,
) BudgetServiceInterface {
	return &BudgetService{
		budgetRepo:    budgetRepo,
		itineraryRepo: itineraryRepo,
	}
}

func (b *BudgetService) GetBudget(ctx context.Context, userID, itineraryID string) (*response_models.BudgetResponse, error) {
	itinerary, err := b.authorize(ctx, userID, itineraryID, false)
	if err != nil {
		return nil, err
	}

	budget, err := b.budgetRepo.FindByItinerary(ctx, itinerary.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if budget == nil {
		// No budget saved yet: report the itinerary's own figure with no
		// expenses instead of a 404.
		budget = &db_models.Budget{
			ItineraryID: itinerary.ID,
			TotalBudget: itinerary.TotalBudget,
		}
	}

	resp := ComputeBudgetSummary(budget)
	return &resp, nil
}

func (b *BudgetService) SaveBudget(ctx context.Context, userID, itineraryID string, request request_models.CreateOrUpdateBudgetRequest) (*response_models.BudgetResponse, error) {
	itinerary, err := b.authorize(ctx, userID, itineraryID, true)
	if err != nil {
		return nil, err
	}

	for _, e := range request.Expenses {
		if !db_models.IsValidExpenseCategory(e.Category) {
			return nil, utils.ErrInvalidInput
		}
	}

	budget, err := b.budgetRepo.FindByItinerary(ctx, itinerary.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if budget == nil {
		budget = &db_models.Budget{ItineraryID: itinerary.ID}
	}
	budget.TotalBudget = request.TotalBudget

	if err := b.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, utils.ErrDatabaseError
	}

	updates, inserts := reconcileExpenses(budget.Expenses, request.Expenses)
	for i := range updates {
		if err := b.budgetRepo.UpdateExpense(ctx, &updates[i]); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	for _, e := range inserts {
		expense := &db_models.Expense{
			BudgetID:    budget.ID,
			Title:       e.Title,
			Amount:      e.Amount,
			Category:    e.Category,
			Date:        e.Date,
			Description: e.Description,
		}
		if err := b.budgetRepo.AddExpense(ctx, expense); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	// Keep the itinerary's own figure in sync so summaries agree.
	if itinerary.TotalBudget != request.TotalBudget {
		itinerary.TotalBudget = request.TotalBudget
		if err := b.itineraryRepo.Update(ctx, itinerary); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return b.GetBudget(ctx, userID, itineraryID)
}

func (b *BudgetService) AddExpense(ctx context.Context, userID, itineraryID string, request request_models.ExpensePayload) (*response_models.BudgetResponse, error) {
	itinerary, err := b.authorize(ctx, userID, itineraryID, true)
	if err != nil {
		return nil, err
	}

	if !db_models.IsValidExpenseCategory(request.Category) {
		return nil, utils.ErrInvalidInput
	}

	budget, err := b.budgetRepo.FindByItinerary(ctx, itinerary.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if budget == nil {
		budget = &db_models.Budget{
			ItineraryID: itinerary.ID,
			TotalBudget: itinerary.TotalBudget,
		}
		if err := b.budgetRepo.Upsert(ctx, budget); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	expense := &db_models.Expense{
		BudgetID:    budget.ID,
		Title:       request.Title,
		Amount:      request.Amount,
		Category:    request.Category,
		Date:        request.Date,
		Description: request.Description,
	}
	if err := b.budgetRepo.AddExpense(ctx, expense); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return b.GetBudget(ctx, userID, itineraryID)
}

func (b *BudgetService) DeleteExpense(ctx context.Context, userID, itineraryID, expenseID string) (*response_models.BudgetResponse, error) {
	itinerary, err := b.authorize(ctx, userID, itineraryID, true)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(expenseID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	budget, err := b.budgetRepo.FindByItinerary(ctx, itinerary.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if budget == nil {
		return nil, utils.ErrBudgetNotFound
	}

	expense, err := b.budgetRepo.FindExpenseByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if expense == nil || expense.BudgetID != budget.ID {
		return nil, utils.ErrExpenseNotFound
	}

	if err := b.budgetRepo.DeleteExpense(ctx, id); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return b.GetBudget(ctx, userID, itineraryID)
}

// reconcileExpenses splits an incoming expense list against the stored rows.
// Entries whose id matches a stored expense carry their edits onto that row;
// id-less entries are new. Ids matching nothing are dropped with a log — the
// row was deleted by another collaborator since the client loaded it.
func reconcileExpenses(existing []db_models.Expense, incoming []request_models.ExpensePayload) (updates []db_models.Expense, inserts []request_models.ExpensePayload) {
	byID := make(map[string]db_models.Expense, len(existing))
	for _, e := range existing {
		byID[e.ID.String()] = e
	}

	for _, e := range incoming {
		if e.ID == "" {
			inserts = append(inserts, e)
			continue
		}
		row, ok := byID[e.ID]
		if !ok {
			log.Printf("skipping expense %s: no such row on this budget", e.ID)
			continue
		}
		row.Title = e.Title
		row.Amount = e.Amount
		row.Category = e.Category
		row.Date = e.Date
		row.Description = e.Description
		updates = append(updates, row)
	}
	return updates, inserts
}

func (b *BudgetService) authorize(ctx context.Context, userID, itineraryID string, write bool) (*db_models.Itinerary, error) {
	itinerary, err := b.itineraryRepo.FindByID(ctx, itineraryID)
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
	if write && !perms.CanEdit && !perms.CanManageBudget {
		return nil, utils.ErrPermissionDenied
	}
	return itinerary, nil
}

// ComputeBudgetSummary derives the spent/remaining/usage figures and the
// per-category breakdown from the stored rows. Usage is capped at 100 so an
// overspent trip still renders a full bar.
func ComputeBudgetSummary(budget *db_models.Budget) response_models.BudgetResponse {
	resp := response_models.BudgetResponse{
		ItineraryID: budget.ItineraryID.String(),
		TotalBudget: budget.TotalBudget,
		Expenses:    make([]response_models.ExpenseResponse, 0, len(budget.Expenses)),
	}

	byCategory := make(map[string]*response_models.CategoryStat)
	for _, e := range budget.Expenses {
		resp.Expenses = append(resp.Expenses, response_models.ExpenseResponse{
			ID:          e.ID.String(),
			Title:       e.Title,
			Amount:      e.Amount,
			Category:    e.Category,
			Date:        e.Date,
			Description: e.Description,
		})
		resp.TotalSpent += e.Amount

		stat, ok := byCategory[e.Category]
		if !ok {
			stat = &response_models.CategoryStat{Category: e.Category}
			byCategory[e.Category] = stat
		}
		stat.Amount += e.Amount
		stat.Count++
	}

	resp.Remaining = resp.TotalBudget - resp.TotalSpent
	if resp.TotalBudget > 0 {
		percent := int(math.Round(resp.TotalSpent / resp.TotalBudget * 100))
		if percent > 100 {
			percent = 100
		}
		resp.UsagePercent = percent
	}

	// Stable order for the stats regardless of insertion order.
	resp.CategoryStats = make([]response_models.CategoryStat, 0, len(byCategory))
	for _, category := range db_models.ExpenseCategories {
		if stat, ok := byCategory[category]; ok {
			resp.CategoryStats = append(resp.CategoryStats, *stat)
		}
	}

	return resp
}
