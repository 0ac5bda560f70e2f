package domain

import (
	"time"

	"github.com/google/uuid"
)

// UsageEvent is one recorded optimization request.
type UsageEvent struct {
	ID          uuid.UUID `json:"id"`
	ModelID     string    `json:"model_id"`
	Category    string    `json:"category"`
	TaskPreview string    `json:"task_preview"`
	Success     bool      `json:"success"`
	At          time.Time `json:"timestamp"`
}

type UsageStats struct {
	TotalRequests int            `json:"total_requests"`
	ModelUsage    map[string]int `json:"model_usage"`
	CategoryUsage map[string]int `json:"category_usage"`
	Recent        []UsageEvent   `json:"recent_requests"`
}

func NewUsageStats() UsageStats {
	return UsageStats{
		ModelUsage:    make(map[string]int),
		CategoryUsage: make(map[string]int),
		Recent:        make([]UsageEvent, 0),
	}
}
