package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevare/entities"
)

const fencedContent = "Here is your roadmap:\n" +
	"```json\n" +
	`{"title":"Data Scientist Roadmap","description":"From zero to hired.","nodes":[` +
	`{"id":"n1","title":"Statistics","description":"Probability and inference.","category":"fundamentals","duration":"4 weeks"},` +
	`{"id":"n2","title":"Python","description":"Pandas and notebooks.","category":"fundamentals"},` +
	`{"id":"n3","title":"ML Models","description":"Supervised learning.","category":"intermediate"}` +
	"]}\n```\nGood luck!"

func TestParseFencedJSON(t *testing.T) {
	res := Parse(fencedContent)
	require.False(t, res.Empty())
	assert.Equal(t, "Data Scientist Roadmap", res.Title)
	assert.Equal(t, "From zero to hired.", res.Description)
	require.Len(t, res.Steps, 3)
	assert.Equal(t, "Statistics", res.Steps[0].Title)
	assert.Equal(t, entities.CategoryFundamentals, res.Steps[0].Category)
	assert.Equal(t, "4 weeks", res.Steps[0].Duration)
	assert.Empty(t, res.Steps[1].Duration) // optional fields stay absent
	assert.False(t, res.IsLegacyFormat)
}

func TestParseFencedBlockWinsOverEmbeddedObject(t *testing.T) {
	content := "```json\n" +
		`{"title":"From Fence","nodes":[{"id":"a","title":"Fenced Step","description":"right one"}]}` +
		"\n```\n" +
		`By the way: {"steps":[{"title":"Embedded Step","description":"wrong one"}]}`
	res := Parse(content)
	require.Len(t, res.Steps, 1)
	assert.Equal(t, "Fenced Step", res.Steps[0].Title)
	assert.Equal(t, "From Fence", res.Title)
}

func TestParseEmbeddedObject(t *testing.T) {
	content := `The model says: {"career":"DevOps Engineer","steps":[` +
		`{"title":"Linux","description":"Shell and processes."},` +
		`{"title":"CI/CD","description":"Pipelines."}` +
		`]} hope that helps`
	res := Parse(content)
	require.Len(t, res.Steps, 2)
	assert.Equal(t, "Linux", res.Steps[0].Title)
	assert.False(t, res.IsLegacyFormat)
}

func TestParseLegacyInlineSteps(t *testing.T) {
	content := `Start with {"title": "HTML", "description": "Structure"} then ` +
		`{"title": "CSS", "description": "Style"} and finally ` +
		`{"title": "JS", "description": "Behavior"} - no JSON object here`
	res := Parse(content)
	require.Len(t, res.Steps, 3)
	assert.Equal(t, []string{"HTML", "CSS", "JS"},
		[]string{res.Steps[0].Title, res.Steps[1].Title, res.Steps[2].Title})
	assert.True(t, res.IsLegacyFormat)
}

func TestParseUnusableText(t *testing.T) {
	res := Parse("Sorry, I cannot help with that request.")
	assert.True(t, res.Empty())
	assert.True(t, res.IsLegacyFormat)
}

func TestParseIdempotentOnCompleteOutput(t *testing.T) {
	first := Parse(fencedContent)
	second := Parse(fencedContent)
	assert.Equal(t, first, second)
}

func TestParseRoundTripsThroughJSON(t *testing.T) {
	res := Parse(fencedContent)
	b, err := json.Marshal(map[string]any{"title": res.Title, "description": res.Description, "nodes": res.Steps})
	require.NoError(t, err)
	again := Parse("```json\n" + string(b) + "\n```")
	assert.Equal(t, res, again)
}

func TestParseIncrementalKeepsPreviousOnPartialInput(t *testing.T) {
	full := "```json\n" +
		`{"career":"QA Engineer","steps":[` +
		`{"title": "Testing Basics", "description": "Unit vs integration"},` +
		`{"title": "Automation", "description": "Selenium and beyond"}]}` + "\n```"

	var res Result
	seenNonEmpty := false
	for i := 1; i <= len(full); i++ {
		res = ParseIncremental(full[:i], res)
		if seenNonEmpty {
			// once populated, steps never regress to empty mid-stream
			assert.False(t, res.Empty(), "regressed at prefix %d", i)
		}
		if !res.Empty() {
			seenNonEmpty = true
		}
	}
	require.True(t, seenNonEmpty)
	require.Len(t, res.Steps, 2)
	assert.Equal(t, "Testing Basics", res.Steps[0].Title)
}

func TestParseIncrementalNoMatchReturnsPrev(t *testing.T) {
	prev := Result{Steps: []entities.RoadmapStep{{Title: "kept", Description: "d"}}}
	got := ParseIncremental("no json anywhere in this fragment", prev)
	assert.Equal(t, prev, got)
}
