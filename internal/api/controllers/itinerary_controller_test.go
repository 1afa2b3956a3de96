package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
)

// listRecorder records which list operation each route reaches and with what
// pagination. Unused methods panic via the embedded nil interface.
type listRecorder struct {
	services.ItineraryServiceInterface
	myCalls     [][2]int
	sharedCalls [][2]int
}

func (f *listRecorder) ListMyItineraries(ctx context.Context, userID string, page, pageSize int) ([]response_models.ItinerarySummaryResponse, error) {
	f.myCalls = append(f.myCalls, [2]int{page, pageSize})
	return []response_models.ItinerarySummaryResponse{{Title: "Rome"}}, nil
}

func (f *listRecorder) ListSharedItineraries(ctx context.Context, userID string, page, pageSize int) ([]response_models.ItinerarySummaryResponse, error) {
	f.sharedCalls = append(f.sharedCalls, [2]int{page, pageSize})
	return []response_models.ItinerarySummaryResponse{{Title: "Lisbon"}}, nil
}

func newListRouter(svc services.ItineraryServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewItineraryController(svc, nil)
	r.GET("/itineraries/my", ctrl.ListMyItineraries)
	r.GET("/itineraries/collaborative", ctrl.ListSharedItineraries)
	return r
}

func TestListRoutesStaySeparate(t *testing.T) {
	svc := &listRecorder{}
	router := newListRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/itineraries/my?page=2&pageSize=5", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /itineraries/my = %d, want 200", w.Code)
	}
	if len(svc.myCalls) != 1 || len(svc.sharedCalls) != 0 {
		t.Fatalf("my route reached my=%d shared=%d calls, want 1 and 0", len(svc.myCalls), len(svc.sharedCalls))
	}
	if svc.myCalls[0] != [2]int{2, 5} {
		t.Errorf("pagination = %v, want [2 5]", svc.myCalls[0])
	}
	if !strings.Contains(w.Body.String(), "Rome") {
		t.Errorf("owned listing body = %s, want the owned itinerary", w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/itineraries/collaborative", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /itineraries/collaborative = %d, want 200", w.Code)
	}
	if len(svc.sharedCalls) != 1 || len(svc.myCalls) != 1 {
		t.Fatalf("collaborative route reached my=%d shared=%d calls, want 1 and 1", len(svc.myCalls), len(svc.sharedCalls))
	}
	if !strings.Contains(w.Body.String(), "Lisbon") {
		t.Errorf("shared listing body = %s, want the shared itinerary", w.Body.String())
	}
}

func TestListRejectsBadPagination(t *testing.T) {
	svc := &listRecorder{}
	router := newListRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/itineraries/my?page=0", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("page=0 = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/itineraries/collaborative?pageSize=101", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("pageSize=101 = %d, want 400", w.Code)
	}

	if len(svc.myCalls) != 0 || len(svc.sharedCalls) != 0 {
		t.Errorf("service reached on invalid pagination: my=%d shared=%d", len(svc.myCalls), len(svc.sharedCalls))
	}
}
