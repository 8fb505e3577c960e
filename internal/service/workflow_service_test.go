package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflow_DiagramSortsByOrder(t *testing.T) {
	svc := NewWorkflowService(setupSource(t), workflow.DefaultOptions())

	d, err := svc.Diagram(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, d.Nodes, 3)
	assert.Equal(t, "Intake", d.Nodes[0].Label)
	assert.Equal(t, "Discovery", d.Nodes[1].Label)
	assert.Equal(t, "Trial", d.Nodes[2].Label)
	assert.Equal(t, []domain.LayoutEdge{
		{ID: "connector-2-1", Source: "node-2", Target: "node-1", FromPhaseID: 2, ToPhaseID: 1},
		{ID: "connector-1-3", Source: "node-1", Target: "node-3", FromPhaseID: 1, ToPhaseID: 3},
	}, d.Edges)
}

func TestWorkflow_DiagramUsesConfiguredColumns(t *testing.T) {
	opts := workflow.DefaultOptions()
	opts.ColumnsPerRow = 2
	d, err := NewWorkflowService(setupSource(t), opts).Diagram(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, d.Nodes[2].Row)
	assert.Equal(t, 0, d.Nodes[2].Column)
}

func TestWorkflow_UnknownTypeHasEmptyDiagram(t *testing.T) {
	d, err := NewWorkflowService(setupSource(t), workflow.DefaultOptions()).Diagram(context.Background(), 99)
	require.NoError(t, err)

	assert.Empty(t, d.Nodes)
	assert.Empty(t, d.Edges)
}

func TestWorkflow_ProcessTypesError(t *testing.T) {
	boom := errors.New("down")
	src := setupSource(t)
	src.Errs = map[string]error{"ListProcessTypes": boom}

	obs := &recordingObserver{}
	_, err := NewWorkflowService(src, workflow.DefaultOptions(), obs).ProcessTypes(context.Background())
	assert.ErrorIs(t, err, boom)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "process-types", obs.events[0].Name)
	assert.False(t, obs.events[0].Success)
}

func TestWorkflow_ProcessTypesObserved(t *testing.T) {
	src := setupSource(t)
	src.ProcessTypes = []domain.ProcessType{{ID: 1, Description: "Litigation", Active: true}}
	obs := &recordingObserver{}

	types, err := NewWorkflowService(src, workflow.DefaultOptions(), obs).ProcessTypes(context.Background())
	require.NoError(t, err)

	assert.Len(t, types, 1)
	assert.Equal(t, []string{"process-types"}, obs.names())
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 1, obs.events[0].Fields["types"])
}
