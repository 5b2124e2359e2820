// pkg/ai/client.go

package ai

import "context"

// Client is the gateway to the generative model. One request per generation
// attempt, no retries here — retrying is a caller decision.
type Client interface {
	// GenerateRoadmap asks for exactly one JSON object conforming to the
	// roadmap schema (title, description, nodes[]) and returns the raw
	// response text verbatim.
	GenerateRoadmap(ctx context.Context, career string) (string, error)

	// StreamRoadmap asks for freeform text and forwards each fragment to
	// onChunk in arrival order, unaltered. Returning an error from onChunk
	// stops the stream.
	StreamRoadmap(ctx context.Context, career string, onChunk func(string) error) error
}
