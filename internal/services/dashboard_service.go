package services

import (
	"context"
	"time"

	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, userID string) (*response_models.DashboardResponse, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

func (d *DashboardService) GetDashboard(ctx context.Context, userID string) (*response_models.DashboardResponse, error) {
	today := utils.FormatISODate(time.Now())

	total, err := d.dashboardRepo.CountItineraries(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	upcoming, err := d.dashboardRepo.CountUpcoming(ctx, userID, today)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	shared, err := d.dashboardRepo.CountSharedWith(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	spent, err := d.dashboardRepo.SumExpenses(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	budget, err := d.dashboardRepo.SumBudgets(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.DashboardResponse{
		TotalItineraries: int(total),
		Collaborations:   int(shared),
		UpcomingTrips:    int(upcoming),
		TotalBudget:      budget,
		TotalSpent:       spent,
	}

	next, err := d.dashboardRepo.NextTrip(ctx, userID, today)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if next != nil {
		summary := toSummaryResponse(next)
		resp.NextTrip = &summary
	}

	return resp, nil
}
