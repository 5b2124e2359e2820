// Package layout maps an ordered step list onto a 2-D flow graph. Placement
// is a pure function of list index (two-column zigzag), no physics involved:
// identical input always yields identical positions.
package layout

import (
	"fmt"

	"elevare/entities"
)

const (
	columns           = 2
	horizontalSpacing = 400.0
	verticalSpacing   = 180.0
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Node struct {
	ID       string               `json:"id"`
	Position Position             `json:"position"`
	Number   int                  `json:"number"` // 1-based sequence number
	Step     entities.RoadmapStep `json:"step"`
}

type Edge struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Type     string `json:"type"`
	Animated bool   `json:"animated"`
}

type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	selected string
}

// Build lays out node i at column i%2 and row i/2, with one directed edge
// per consecutive pair. N steps produce exactly N-1 edges; a single step has
// none.
func Build(steps []entities.RoadmapStep) *Graph {
	g := &Graph{
		Nodes: make([]Node, 0, len(steps)),
		Edges: make([]Edge, 0),
	}
	for i, step := range steps {
		col := i % columns
		row := i / columns
		g.Nodes = append(g.Nodes, Node{
			ID: nodeID(step, i),
			Position: Position{
				X: float64(col) * horizontalSpacing,
				Y: float64(row) * verticalSpacing,
			},
			Number: i + 1,
			Step:   step,
		})
		if i < len(steps)-1 {
			g.Edges = append(g.Edges, Edge{
				ID:       fmt.Sprintf("edge-%d", i),
				Source:   nodeID(step, i),
				Target:   nodeID(steps[i+1], i+1),
				Type:     "smoothstep",
				Animated: true,
			})
		}
	}
	return g
}

// nodeID prefers the step's own id so positions stay addressable across
// renders; index ids cover legacy steps that carry none.
func nodeID(step entities.RoadmapStep, i int) string {
	if step.ID != "" {
		return step.ID
	}
	return fmt.Sprintf("step-%d", i)
}

// Select marks id as selected and returns that node's full step data for a
// detail panel. The graph holds no other interaction state.
func (g *Graph) Select(id string) (entities.RoadmapStep, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			g.selected = id
			return n.Step, true
		}
	}
	return entities.RoadmapStep{}, false
}

func (g *Graph) Selected() string { return g.selected }

func (g *Graph) ClearSelection() { g.selected = "" }
