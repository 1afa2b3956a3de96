package services

import (
	"testing"

	"github.com/google/uuid"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
)

func TestComputeBudgetSummaryDerivedFigures(t *testing.T) {
	budget := &db_models.Budget{
		ItineraryID: uuid.New(),
		TotalBudget: 1000,
		Expenses: []db_models.Expense{
			{Title: "Hotel", Amount: 400, Category: db_models.CategoryAccommodation},
			{Title: "Dinner", Amount: 60, Category: db_models.CategoryFood},
			{Title: "Lunch", Amount: 40, Category: db_models.CategoryFood},
		},
	}

	resp := ComputeBudgetSummary(budget)

	if resp.TotalSpent != 500 {
		t.Errorf("TotalSpent = %v, want 500", resp.TotalSpent)
	}
	if resp.Remaining != 500 {
		t.Errorf("Remaining = %v, want 500", resp.Remaining)
	}
	if resp.UsagePercent != 50 {
		t.Errorf("UsagePercent = %d, want 50", resp.UsagePercent)
	}
	if len(resp.Expenses) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(resp.Expenses))
	}
}

func TestComputeBudgetSummaryUsageCappedAt100(t *testing.T) {
	budget := &db_models.Budget{
		ItineraryID: uuid.New(),
		TotalBudget: 100,
		Expenses: []db_models.Expense{
			{Title: "Flights", Amount: 250, Category: db_models.CategoryTransportation},
		},
	}

	resp := ComputeBudgetSummary(budget)

	if resp.UsagePercent != 100 {
		t.Errorf("UsagePercent = %d, want 100 for overspent budget", resp.UsagePercent)
	}
	if resp.Remaining != -150 {
		t.Errorf("Remaining = %v, want -150", resp.Remaining)
	}
}

func TestComputeBudgetSummaryZeroBudget(t *testing.T) {
	budget := &db_models.Budget{
		ItineraryID: uuid.New(),
		Expenses: []db_models.Expense{
			{Title: "Coffee", Amount: 5, Category: db_models.CategoryFood},
		},
	}

	resp := ComputeBudgetSummary(budget)

	if resp.UsagePercent != 0 {
		t.Errorf("UsagePercent = %d, want 0 when no budget is set", resp.UsagePercent)
	}
}

func TestReconcileExpensesEditsExistingRow(t *testing.T) {
	hotelID := uuid.New()
	existing := []db_models.Expense{
		{BaseModel: db_models.BaseModel{ID: hotelID}, Title: "Hotel", Amount: 400, Category: db_models.CategoryAccommodation},
	}
	incoming := []request_models.ExpensePayload{
		{ID: hotelID.String(), Title: "Hotel", Amount: 350, Category: db_models.CategoryAccommodation},
	}

	updates, inserts := reconcileExpenses(existing, incoming)

	if len(inserts) != 0 {
		t.Fatalf("expected no inserts, got %d", len(inserts))
	}
	if len(updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(updates))
	}
	if updates[0].ID != hotelID {
		t.Errorf("update targets row %s, want %s", updates[0].ID, hotelID)
	}
	if updates[0].Amount != 350 {
		t.Errorf("updated amount = %v, want 350", updates[0].Amount)
	}
}

func TestReconcileExpensesInsertsIDLessRows(t *testing.T) {
	existing := []db_models.Expense{
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, Title: "Hotel", Amount: 400, Category: db_models.CategoryAccommodation},
	}
	incoming := []request_models.ExpensePayload{
		{Title: "Dinner", Amount: 60, Category: db_models.CategoryFood},
	}

	updates, inserts := reconcileExpenses(existing, incoming)

	if len(updates) != 0 {
		t.Fatalf("expected no updates, got %d", len(updates))
	}
	if len(inserts) != 1 || inserts[0].Title != "Dinner" {
		t.Fatalf("inserts = %+v, want the new dinner expense", inserts)
	}
}

func TestReconcileExpensesDropsUnknownIDs(t *testing.T) {
	incoming := []request_models.ExpensePayload{
		{ID: uuid.New().String(), Title: "Ghost", Amount: 10, Category: db_models.CategoryOther},
	}

	updates, inserts := reconcileExpenses(nil, incoming)

	if len(updates) != 0 || len(inserts) != 0 {
		t.Errorf("updates = %d inserts = %d, want both empty for an unknown id", len(updates), len(inserts))
	}
}

func TestComputeBudgetSummaryCategoryStats(t *testing.T) {
	budget := &db_models.Budget{
		ItineraryID: uuid.New(),
		TotalBudget: 1000,
		Expenses: []db_models.Expense{
			{Title: "Museum", Amount: 30, Category: db_models.CategoryActivities},
			{Title: "Hotel", Amount: 300, Category: db_models.CategoryAccommodation},
			{Title: "Concert", Amount: 70, Category: db_models.CategoryActivities},
		},
	}

	resp := ComputeBudgetSummary(budget)

	if len(resp.CategoryStats) != 2 {
		t.Fatalf("expected 2 category stats, got %d", len(resp.CategoryStats))
	}
	// Stats follow the canonical category order: accommodation first.
	if resp.CategoryStats[0].Category != db_models.CategoryAccommodation {
		t.Errorf("first stat = %q, want accommodation", resp.CategoryStats[0].Category)
	}
	if resp.CategoryStats[1].Amount != 100 || resp.CategoryStats[1].Count != 2 {
		t.Errorf("activities stat = %+v, want amount 100 count 2", resp.CategoryStats[1])
	}
}
