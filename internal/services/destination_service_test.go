package services

import (
	"strings"
	"testing"

	"voyago/internal/models/request_models"
)

func TestBuildPreferenceQuery(t *testing.T) {
	var req request_models.RecommendDestinationsRequest
	req.Preferences.TravelStyle = "adventure"
	req.Preferences.BudgetLevel = "mid-range"
	req.Preferences.ActivityPreferences = []string{"hiking", "museums"}

	query := buildPreferenceQuery(req)

	for _, want := range []string{"adventure", "mid-range", "hiking", "museums"} {
		if !strings.Contains(query, want) {
			t.Errorf("query %q missing %q", query, want)
		}
	}
}

func TestBuildPreferenceQueryEmpty(t *testing.T) {
	var req request_models.RecommendDestinationsRequest

	if query := buildPreferenceQuery(req); query != "" {
		t.Errorf("expected empty query for empty preferences, got %q", query)
	}
}

func TestBuildPreferenceQueryFreeTextOnly(t *testing.T) {
	var req request_models.RecommendDestinationsRequest
	req.Preferences.FreeText = "quiet coastal towns in autumn"

	query := buildPreferenceQuery(req)

	if !strings.Contains(query, "quiet coastal towns") {
		t.Errorf("query %q missing free text", query)
	}
}
