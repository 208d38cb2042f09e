package service

// User is the identity behind an API token.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TaskList is a ClickUp list, the container tasks are created under.
type TaskList struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TaskPayload is the request body for creating one task.
// Optional fields carry omitempty so absent columns produce no JSON key;
// description is always sent, empty string when the column is absent.
type TaskPayload struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	DueDate      *int64        `json:"due_date,omitempty"`
	Priority     *int          `json:"priority,omitempty"`
	Status       string        `json:"status,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	Assignees    []string      `json:"assignees,omitempty"`
	Subtasks     []Subtask     `json:"subtasks,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty"`
}

// Subtask holds the name of one subtask to create under a task.
type Subtask struct {
	Name string `json:"name"`
}

// CustomField is one {id, value} pair sourced from a custom_* column.
type CustomField struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// CreatedTask is the service-assigned identity of a created task.
type CreatedTask struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
