package service

import (
	"context"
	"fmt"
	"time"

	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/workflow"
)

type workflowService struct {
	src      DataSource
	opts     workflow.Options
	observer UseCaseObserver
}

func NewWorkflowService(src DataSource, opts workflow.Options, observers ...UseCaseObserver) WorkflowService {
	return &workflowService{src: src, opts: opts, observer: useCaseObserverOrNoop(observers)}
}

func (s *workflowService) ProcessTypes(ctx context.Context) (types []domain.ProcessType, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "process-types", time.Now().UTC(), fields, &err)

	types, err = s.src.ListProcessTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading process types: %w", err)
	}
	fields["types"] = len(types)
	return types, nil
}

// Diagram lays out the phases of a process type in Order sequence.
func (s *workflowService) Diagram(ctx context.Context, processTypeID int64) (diagram *domain.Diagram, err error) {
	fields := map[string]any{"process_type": processTypeID}
	defer observe(ctx, s.observer, "workflow-diagram", time.Now().UTC(), fields, &err)

	phases, err := s.src.ListProcessPhases(ctx, processTypeID)
	if err != nil {
		return nil, fmt.Errorf("loading phases: %w", err)
	}

	d := workflow.Layout(workflow.SortPhases(phases), s.opts)
	fields["nodes"] = len(d.Nodes)
	fields["rows"] = workflow.Rows(d)
	return &d, nil
}
