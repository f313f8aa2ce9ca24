package models

import "time"

// TodoStatus is the progress state of a todo item.
type TodoStatus string

const (
	TodoStatusNotStarted TodoStatus = "NotStarted"
	TodoStatusOnGoing    TodoStatus = "OnGoing"
	TodoStatusCompleted  TodoStatus = "Completed"
)

// IsValid reports whether s is one of the known statuses.
func (s TodoStatus) IsValid() bool {
	switch s {
	case TodoStatusNotStarted, TodoStatusOnGoing, TodoStatusCompleted:
		return true
	}
	return false
}

func (s TodoStatus) String() string {
	return string(s)
}

// Todo is a single task owned by exactly one user.
type Todo struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Status      TodoStatus `json:"status"`
	UserID      string     `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoFilter narrows a todo listing. UserID is mandatory, Status is optional.
type TodoFilter struct {
	UserID string
	Status *TodoStatus
}

// TodoUpdate is a partial update of a todo item owned by UserID.
// Only non-nil fields are applied.
type TodoUpdate struct {
	ID     string
	UserID string

	Name        *string
	Description *string
	Status      *TodoStatus
}

// IsEmpty reports whether the update carries no field changes.
func (u TodoUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Status == nil
}
