package entities

import "time"

// Roadmap lifecycle states. A record is created as "streaming" only by the
// legacy SSE path; the one-shot path persists "completed" records or nothing.
const (
	RoadmapStatusStreaming = "streaming"
	RoadmapStatusCompleted = "completed"
	RoadmapStatusFailed    = "failed"
)

// Step categories the model is constrained to.
const (
	CategoryFundamentals   = "fundamentals"
	CategoryIntermediate   = "intermediate"
	CategoryAdvanced       = "advanced"
	CategorySpecialization = "specialization"
)

// RoadmapStep is one unit of a roadmap. List order IS the learning sequence;
// there are no predecessor/successor fields.
type RoadmapStep struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category,omitempty"` // fundamentals|intermediate|advanced|specialization
	LearnMoreURL string `json:"learnMoreUrl,omitempty"`
	Duration     string `json:"duration,omitempty"` // human readable, e.g. "2 weeks"
}

type Roadmap struct {
	RoadmapID   uint   `gorm:"primaryKey" json:"id"`
	UserID      string `json:"userId" gorm:"index"`
	Career      string `json:"career"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	// Content keeps the raw model output verbatim (JSON blob or legacy plain
	// text) so records can always be re-parsed.
	Content string        `json:"content"`
	Steps   []RoadmapStep `gorm:"serializer:json" json:"steps"`
	Status  string        `json:"status"` // streaming|completed|failed

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
