package clickup

import (
	"context"

	"cuimport/internal/service"
)

// Fixed placeholders returned for every task created in dry-run mode.
const (
	DryRunTaskID  = "dry-run-task-id"
	DryRunTaskURL = "https://app.clickup.com/dry-run-url"
)

// DryRun implements service.Service without network calls. Every
// operation succeeds; CreateTask synthesizes fixed placeholder values.
type DryRun struct{}

// NewDryRun creates the no-network backend.
func NewDryRun() *DryRun {
	return &DryRun{}
}

func (d *DryRun) CurrentUser(ctx context.Context) (service.User, error) {
	return service.User{Username: "dry-run"}, nil
}

func (d *DryRun) GetList(ctx context.Context, listID string) (service.TaskList, error) {
	return service.TaskList{ID: listID, Name: "dry-run"}, nil
}

func (d *DryRun) CreateTask(ctx context.Context, listID string, payload service.TaskPayload) (service.CreatedTask, error) {
	return service.CreatedTask{ID: DryRunTaskID, URL: DryRunTaskURL}, nil
}
