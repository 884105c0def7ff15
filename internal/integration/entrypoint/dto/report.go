package dto

// WeeklyReportResponse represents the response for weekly report delivery.
type WeeklyReportResponse struct {
	Message    string `json:"message"`
	ProviderID string `json:"provider_id,omitempty"`
}
