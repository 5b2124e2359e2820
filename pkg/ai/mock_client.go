// pkg/ai/mock_client.go

package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"elevare/entities"
)

type mockClient struct{}

// NewMock returns a deterministic offline client, used when no API key is
// configured and by tests.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) GenerateRoadmap(_ context.Context, career string) (string, error) {
	payload := map[string]any{
		"title":       career + " Roadmap",
		"description": "A practical learning path for becoming a " + career + ".",
		"nodes":       mockSteps(career),
	}
	b, _ := json.Marshal(payload)
	return string(b), nil
}

func (m *mockClient) StreamRoadmap(ctx context.Context, career string, onChunk func(string) error) error {
	payload := map[string]any{
		"career": career,
		"steps":  mockSteps(career),
	}
	b, _ := json.MarshalIndent(payload, "", "  ")
	content := "Here is your roadmap:\n```json\n" + string(b) + "\n```\n"

	// emit in small fragments to exercise incremental consumers
	const frag = 48
	for i := 0; i < len(content); i += frag {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := i + frag
		if end > len(content) {
			end = len(content)
		}
		if err := onChunk(content[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func mockSteps(career string) []entities.RoadmapStep {
	mk := func(i int, title, desc, cat, dur string) entities.RoadmapStep {
		return entities.RoadmapStep{
			ID:          fmt.Sprintf("step-%d", i),
			Title:       title,
			Description: desc,
			Category:    cat,
			Duration:    dur,
		}
	}
	return []entities.RoadmapStep{
		mk(1, "Learn the fundamentals", "Core concepts and tooling every "+career+" relies on daily.", entities.CategoryFundamentals, "4 weeks"),
		mk(2, "Build small projects", "Apply the basics on self-contained projects to cement them.", entities.CategoryFundamentals, "3 weeks"),
		mk(3, "Go deeper on the stack", "Intermediate techniques, debugging and common patterns.", entities.CategoryIntermediate, "6 weeks"),
		mk(4, "Ship a portfolio piece", "A polished, documented project you can show to employers.", entities.CategoryIntermediate, "4 weeks"),
		mk(5, "Advanced topics", "Performance, architecture and the hard parts of the craft.", entities.CategoryAdvanced, "6 weeks"),
		mk(6, "Specialize and apply", "Pick a niche, prepare interview material and start applying.", entities.CategorySpecialization, "4 weeks"),
	}
}
