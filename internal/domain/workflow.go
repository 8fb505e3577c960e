package domain

import "fmt"

// ProcessType is a named multi-step workflow.
type ProcessType struct {
	ID              int64  `json:"id"`
	Description     string `json:"description"`
	AverageDuration *int   `json:"averageDuration,omitempty"`
	Active          bool   `json:"state"`
}

// ProcessPhase is one step of a ProcessType. Order defines the sequence.
type ProcessPhase struct {
	ID                     int64  `json:"id"`
	ProcessTypeID          int64  `json:"processTypeId"`
	Description            string `json:"description"`
	Order                  int    `json:"order"`
	Duration               *int   `json:"duration,omitempty"` // nominal days
	Active                 bool   `json:"state"`
	ProcessTypeDescription string `json:"processTypeDescription,omitempty"`
}

// LayoutNode is a positioned phase in a workflow diagram. X and Y are the
// node center.
type LayoutNode struct {
	ID       string  `json:"id"`
	PhaseID  int64   `json:"phaseId"`
	Label    string  `json:"label"`
	Column   int     `json:"column"`
	Row      int     `json:"row"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Duration *int    `json:"duration,omitempty"`
	Active   bool    `json:"active"`
}

// LayoutEdge connects two sequence-adjacent phases.
type LayoutEdge struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Target      string `json:"target"`
	FromPhaseID int64  `json:"fromPhaseId"`
	ToPhaseID   int64  `json:"toPhaseId"`
}

// Diagram is the node and edge geometry handed to a diagram renderer.
type Diagram struct {
	Nodes []LayoutNode `json:"nodes"`
	Edges []LayoutEdge `json:"edges"`
}

// NodeID returns the stable diagram identity of a phase.
func NodeID(phaseID int64) string {
	return fmt.Sprintf("node-%d", phaseID)
}

// EdgeID returns the identity of the connector between two phases.
func EdgeID(fromPhaseID, toPhaseID int64) string {
	return fmt.Sprintf("connector-%d-%d", fromPhaseID, toPhaseID)
}
