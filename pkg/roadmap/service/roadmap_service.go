package service

import (
	"context"
	"errors"

	"elevare/entities"
)

// Validation failures are rejected before any external call.
var (
	ErrCareerRequired = errors.New("career is required")
	ErrUserIDRequired = errors.New("userId is required")
)

// ErrUnparsable: the model produced text but no strategy extracted a usable
// step list. Treated exactly like an AI failure — nothing is persisted by the
// one-shot path.
var ErrUnparsable = errors.New("model output could not be parsed into a roadmap")

func IsValidation(err error) bool {
	return errors.Is(err, ErrCareerRequired) || errors.Is(err, ErrUserIDRequired)
}

// RoadmapService is the single entry point that turns (career, userId) into
// a persisted, retrievable roadmap.
type RoadmapService interface {
	// Generate runs the schema-mode gateway call, parses, validates a
	// non-empty step list and persists a completed record. On any failure
	// the store receives no write.
	Generate(ctx context.Context, career, userID string) (*entities.Roadmap, error)

	// StreamGenerate creates a pending "streaming" record, relays each
	// fragment to onChunk in order, and finalizes the record exactly once
	// (completed or failed). The returned roadmap reflects the final state.
	StreamGenerate(ctx context.Context, career, userID string, onChunk func(string) error) (*entities.Roadmap, error)

	ListByUser(userID string) ([]entities.Roadmap, error)
	GetByID(id uint) (*entities.Roadmap, error)
	Delete(id uint) error
}
