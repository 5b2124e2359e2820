// Package parser turns raw model output into a structured roadmap. The
// output is untrusted text that arrives in one of three shapes, tried in
// strict order: a ```json fenced block, a brace-delimited object containing
// a "steps"/"nodes" key, or legacy freeform text with inline step objects.
package parser

import (
	"encoding/json"
	"regexp"
	"strings"

	"elevare/entities"
)

type Result struct {
	Title       string
	Description string
	Steps       []entities.RoadmapStep
	// IsLegacyFormat marks content that carried no {title, description,
	// nodes} object: plain-text roadmaps, or text no strategy could read.
	IsLegacyFormat bool
}

// Empty means "could not parse", never "a zero-step roadmap".
func (r Result) Empty() bool { return len(r.Steps) == 0 }

var (
	fencedFinalRx = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	// open variant tolerates a fence the stream has not closed yet
	fencedOpenRx = regexp.MustCompile("(?s)```json\\s*(.*?)(?:```|$)")
	embeddedRx   = regexp.MustCompile(`(?s)\{.*"(?:steps|nodes)".*\}`)
	directRx     = regexp.MustCompile(`(?s)\{.*?"career"\s*:.*?"steps"\s*:.*?\[.*?\]`)
	stepRx       = regexp.MustCompile(`\{\s*"title"\s*:\s*"([^"]*)"\s*,\s*"description"\s*:\s*"([^"]*)"\s*\}`)
)

// Parse is the final, post-completion pass. An empty result here is
// reportable by the caller; mid-stream use ParseIncremental instead.
func Parse(content string) Result {
	// 1) fenced JSON block
	if m := fencedFinalRx.FindStringSubmatch(content); m != nil {
		if r, ok := parseObject(m[1]); ok {
			return r
		}
	}
	// 2) first brace object carrying a steps/nodes key; prose around the
	// match is ignored
	if m := embeddedRx.FindString(content); m != "" {
		if r, ok := parseObject(m); ok {
			return r
		}
	}
	// 3) legacy literal scan for inline {"title": ..., "description": ...}
	if steps := scanSteps(content); len(steps) > 0 {
		return Result{Steps: steps, IsLegacyFormat: true}
	}
	return Result{IsLegacyFormat: true}
}

// ParseIncremental is best-effort on partial input: it re-reads the
// cumulative buffer after each fragment and keeps prev whenever nothing new
// is extractable, so a populated step list never regresses to empty
// mid-stream.
func ParseIncremental(buf string, prev Result) Result {
	jsonStr := ""
	if m := fencedOpenRx.FindStringSubmatch(buf); m != nil && m[1] != "" {
		jsonStr = m[1]
	} else if m := directRx.FindString(buf); m != "" {
		jsonStr = m
	}
	if jsonStr == "" {
		return prev
	}
	steps := scanSteps(jsonStr)
	if len(steps) == 0 {
		return prev
	}
	out := prev
	out.Steps = steps
	return out
}

type objectPayload struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Career      string                 `json:"career"`
	Nodes       []entities.RoadmapStep `json:"nodes"`
	Steps       []entities.RoadmapStep `json:"steps"`
}

// parseObject requires only the structural presence of a node list; optional
// node fields stay absent rather than failing the parse.
func parseObject(s string) (Result, bool) {
	var p objectPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &p); err != nil {
		return Result{}, false
	}
	nodes := p.Nodes
	if nodes == nil {
		nodes = p.Steps
	}
	if nodes == nil {
		return Result{}, false
	}
	return Result{Title: p.Title, Description: p.Description, Steps: nodes}, true
}

func scanSteps(s string) []entities.RoadmapStep {
	var steps []entities.RoadmapStep
	for _, m := range stepRx.FindAllStringSubmatch(s, -1) {
		if m[1] != "" && m[2] != "" {
			steps = append(steps, entities.RoadmapStep{Title: m[1], Description: m[2]})
		}
	}
	return steps
}
