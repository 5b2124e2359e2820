// pkg/ai/gemini_client.go

package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"elevare/entities"
)

type geminiClient struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiClient{client: c, model: model}, nil
}

func (c *geminiClient) GenerateRoadmap(ctx context.Context, career string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   roadmapSchema(),
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(schemaPrompt(career)), cfg)
	if err != nil {
		return "", ClassifyUpstream(err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (c *geminiClient) StreamRoadmap(ctx context.Context, career string, onChunk func(string) error) error {
	got := false
	for resp, err := range c.client.Models.GenerateContentStream(ctx, c.model, genai.Text(streamPrompt(career)), nil) {
		if err != nil {
			return ClassifyUpstream(err)
		}
		if t := resp.Text(); t != "" {
			got = true
			if err := onChunk(t); err != nil {
				return err
			}
		}
	}
	if !got {
		return ErrEmptyResponse
	}
	return nil
}

// roadmapSchema constrains the response to one JSON object:
// {title, description, nodes[{id,title,description,category,learnMoreUrl,duration}]}.
func roadmapSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"nodes": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"id":          {Type: genai.TypeString},
						"title":       {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"category": {
							Type: genai.TypeString,
							Enum: []string{
								entities.CategoryFundamentals,
								entities.CategoryIntermediate,
								entities.CategoryAdvanced,
								entities.CategorySpecialization,
							},
						},
						"learnMoreUrl": {Type: genai.TypeString},
						"duration":     {Type: genai.TypeString},
					},
					Required: []string{"id", "title", "description", "category"},
				},
			},
		},
		Required: []string{"title", "description", "nodes"},
	}
}

func schemaPrompt(career string) string {
	return fmt.Sprintf(`Create a step-by-step learning roadmap for becoming a successful %s.
Order the nodes from first thing to learn to last. Cover:
1. Key skills and technologies to learn (in order)
2. Recommended courses or certifications
3. Real-world projects to practice
4. How to build a strong portfolio
5. Job preparation tips

Give each node a short title, a 1-3 sentence description, a category
(fundamentals, intermediate, advanced or specialization), an optional
learnMoreUrl pointing to a real learning resource, and an optional
human-readable duration such as "2 weeks".
Return exactly one JSON object conforming to the response schema.`, career)
}

// streamPrompt is the legacy freeform prompt; its output is parsed
// defensively on the client as it streams in.
func streamPrompt(career string) string {
	return fmt.Sprintf(`Create a clear, step-by-step roadmap for becoming a successful %s.
Include:
1. Key skills and technologies to learn (in order)
2. Recommended courses or certifications
3. Real-world projects to practice
4. How to build a strong portfolio
5. Job preparation tips

Format response as JSON:
{
  "career": "%s",
  "steps": [
    {"title": "Step 1", "description": "..."},
    {"title": "Step 2", "description": "..."}
  ]
}`, career, career)
}
