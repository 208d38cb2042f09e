// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"cuimport/internal/service"
)

// CreateCall records one CreateTask invocation.
type CreateCall struct {
	ListID  string
	Payload service.TaskPayload
}

// FakeService is an in-memory implementation of service.Service for
// testing.
type FakeService struct {
	mu     sync.Mutex
	lists  map[string]string // listID -> name
	calls  []CreateCall
	nextID int

	// Error injection for testing
	CurrentUserErr error
	GetListErr     error
	CreateTaskErr  error
	FailTaskNames  map[string]error // task name -> error for that row only
}

// NewFakeService creates a FakeService with no lists.
func NewFakeService() *FakeService {
	return &FakeService{
		lists:         make(map[string]string),
		FailTaskNames: make(map[string]error),
	}
}

// AddList registers a list the fake knows about.
func (f *FakeService) AddList(id, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[id] = name
}

// CreateCalls returns all recorded CreateTask invocations.
func (f *FakeService) CreateCalls() []CreateCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]CreateCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// CurrentUser implements service.Service.
func (f *FakeService) CurrentUser(ctx context.Context) (service.User, error) {
	if f.CurrentUserErr != nil {
		return service.User{}, f.CurrentUserErr
	}
	return service.User{ID: 1, Username: "fake-user", Email: "fake@example.com"}, nil
}

// GetList implements service.Service.
func (f *FakeService) GetList(ctx context.Context, listID string) (service.TaskList, error) {
	if f.GetListErr != nil {
		return service.TaskList{}, f.GetListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	name, ok := f.lists[listID]
	if !ok {
		return service.TaskList{}, &service.NotFoundError{Resource: "/list/" + listID}
	}
	return service.TaskList{ID: listID, Name: name}, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, listID string, payload service.TaskPayload) (service.CreatedTask, error) {
	if f.CreateTaskErr != nil {
		return service.CreatedTask{}, f.CreateTaskErr
	}
	if err, ok := f.FailTaskNames[payload.Name]; ok {
		return service.CreatedTask{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, CreateCall{ListID: listID, Payload: payload})
	f.nextID++
	id := fmt.Sprintf("task-%d", f.nextID)
	return service.CreatedTask{
		ID:  id,
		URL: "https://app.clickup.com/t/" + id,
	}, nil
}
