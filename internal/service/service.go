// Package service defines the backend-agnostic interface for ClickUp operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All ClickUp API calls go through this interface.
// The importer and commands never build HTTP requests directly.
type Service interface {
	// CurrentUser returns the identity the API token authenticates as.
	CurrentUser(ctx context.Context) (User, error)

	// GetList looks up a list by ID. Returns *NotFoundError if the list
	// does not exist.
	GetList(ctx context.Context, listID string) (TaskList, error)

	// CreateTask creates one task in the given list and returns the
	// service-assigned ID and canonical URL. Callers treat a non-nil
	// error as a soft per-task failure; it never carries batch state.
	CreateTask(ctx context.Context, listID string, payload TaskPayload) (CreatedTask, error)
}
