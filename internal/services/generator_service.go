package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/schedule"
	"voyago/pkg/utils"
)

type GeneratorServiceInterface interface {
	GenerateItinerary(ctx context.Context, ownerID string, request request_models.GenerateItineraryRequest) (*response_models.ItineraryDetailResponse, error)
}

type GeneratorService struct {
	client           *genai.Client
	model            string
	itineraryService ItineraryServiceInterface
}

func NewGeneratorService(itineraryService ItineraryServiceInterface) (GeneratorServiceInterface, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeneratorService{
		client:           client,
		model:            model,
		itineraryService: itineraryService,
	}, nil
}

func (g *GeneratorService) GenerateItinerary(ctx context.Context, ownerID string, request request_models.GenerateItineraryRequest) (*response_models.ItineraryDetailResponse, error) {
	dayCount := utils.DurationDays(request.StartDate, request.EndDate)
	if dayCount < 1 || dayCount > 30 {
		return nil, utils.ErrInvalidInput
	}

	days, err := g.generateDays(ctx, request, dayCount)
	if err != nil {
		return nil, err
	}

	create := request_models.CreateItineraryRequest{
		Title:         fmt.Sprintf("Trip to %s", request.Destination),
		Description:   fmt.Sprintf("Generated plan for %s", request.Destination),
		StartDate:     request.StartDate,
		EndDate:       request.EndDate,
		TotalBudget:   request.TotalBudget,
		Preferences:   request.Preferences,
		ItineraryDays: days,
	}
	return g.itineraryService.CreateItinerary(ctx, ownerID, create)
}

func (g *GeneratorService) generateDays(ctx context.Context, request request_models.GenerateItineraryRequest, dayCount int) ([]schedule.Day, error) {
	m := g.client.GenerativeModel(g.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	prompt := g.buildPrompt(request, dayCount)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content generated")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("model returned invalid JSON")
	}

	var days []schedule.Day
	if err := json.Unmarshal([]byte(content), &days); err != nil {
		return nil, fmt.Errorf("unmarshalling generated plan: %w", err)
	}

	// Clamp what the model returned onto the requested range: dates come
	// from the calendar, not the model.
	calendar := schedule.ExpandRange(request.StartDate, request.EndDate)
	for i := range calendar {
		if i < len(days) && len(days[i].Activities) > 0 {
			calendar[i].Activities = days[i].Activities
		}
	}
	return schedule.NormalizeDays(calendar), nil
}

func (g *GeneratorService) buildPrompt(request request_models.GenerateItineraryRequest, dayCount int) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Create a %d-day travel plan for %s. Return JSON only, an array of days:\n", dayCount, request.Destination)
	prompt.WriteString(`[{"date":"YYYY-MM-DD","activities":[{"title":"...","timeStart":"09:00","timeEnd":"11:00","location":"...","description":"..."}]}]`)
	prompt.WriteString("\n\nHard constraints:\n")
	fmt.Fprintf(&prompt, "- Exactly %d entries, dates %s through %s.\n", dayCount, request.StartDate, request.EndDate)
	prompt.WriteString("- 2-5 activities per day, times between 08:00 and 22:00, no overlaps.\n")

	if p := request.Preferences; p != nil {
		if p.PacePreference != "" {
			fmt.Fprintf(&prompt, "- Pace: %s.\n", p.PacePreference)
		}
		if len(p.ActivityPreferences) > 0 {
			fmt.Fprintf(&prompt, "- Favour these activity types: %s.\n", strings.Join(p.ActivityPreferences, ", "))
		}
		if p.SpecialRequirements != "" {
			fmt.Fprintf(&prompt, "- Requirements: %s.\n", p.SpecialRequirements)
		}
	}
	if request.TotalBudget > 0 {
		fmt.Fprintf(&prompt, "- Stay within a budget of %.0f overall.\n", request.TotalBudget)
	}

	prompt.WriteString("\nReturn JSON only. No comments, no markdown.")
	return prompt.String()
}
