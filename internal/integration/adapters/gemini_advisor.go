package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/shopledger/backend/internal/application/adapter"
)

// GeminiAdvisor implements the adapter.AdvisorService using Google Gemini.
type GeminiAdvisor struct {
	apiKey    string
	modelName string
}

// NewGeminiAdvisor creates a new Gemini advisor instance.
func NewGeminiAdvisor(apiKey string) *GeminiAdvisor {
	return &GeminiAdvisor{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the advisor is configured with an API key.
func (s *GeminiAdvisor) IsAvailable() bool {
	return s.apiKey != ""
}

// Advise generates a short piece of business advice from the insights summary.
func (s *GeminiAdvisor) Advise(ctx context.Context, request *adapter.AdviceRequest) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini advisor is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(request)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	advice := extractText(resp)
	if advice == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return advice, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiAdvisor) buildPrompt(request *adapter.AdviceRequest) string {
	var sb strings.Builder

	sb.WriteString("You are a friendly business advisor for small shop owners. ")
	sb.WriteString("Based on the numbers below, give 2-3 short, concrete, actionable tips. ")
	sb.WriteString("Use plain language, no jargon, no markdown formatting. Keep it under 120 words.\n\n")

	fmt.Fprintf(&sb, "Shop: %s (currency: %s)\n", request.ShopName, request.Currency)
	fmt.Fprintf(&sb, "Health score: %d/100 (%s)\n", request.HealthScore, request.HealthStatus)
	fmt.Fprintf(&sb, "Sales this week: %s (%.1f%% vs last week)\n", request.WeeklySales, request.WeeklyChange)
	fmt.Fprintf(&sb, "Sales this month: %s (%.1f%% vs last month)\n", request.MonthlySales, request.MonthlyChange)
	fmt.Fprintf(&sb, "Forecast for tomorrow: %s\n", request.ForecastNextDay)

	if len(request.TopProducts) > 0 {
		fmt.Fprintf(&sb, "Best sellers: %s\n", strings.Join(request.TopProducts, ", "))
	}
	if len(request.SlowMovers) > 0 {
		fmt.Fprintf(&sb, "Not selling for over a month: %s\n", strings.Join(request.SlowMovers, ", "))
	}
	fmt.Fprintf(&sb, "Busiest day: %s, slowest day: %s\n", request.BusiestDay, request.SlowestDay)
	if request.TopExpense != "" {
		fmt.Fprintf(&sb, "Biggest expense category: %s\n", request.TopExpense)
	}

	return sb.String()
}

// extractText concatenates the text parts of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
