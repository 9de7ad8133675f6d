package taskmanager

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the user model
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Role          UserRole   `bun:"user_role,notnull" json:"user_role,omitempty"`
	Username      string     `bun:"username,notnull,unique" json:"username,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash" json:"-"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// TaskStatus is the lifecycle state of a task
type TaskStatus = string

const (
	// StatusPending is the initial status of a new task
	StatusPending TaskStatus = "Pending"
	// StatusInProgress marks a task somebody is working on
	StatusInProgress TaskStatus = "In Progress"
	// StatusDone marks a completed task
	StatusDone TaskStatus = "Done"
)

// ParseTaskStatus safely parses a string into a TaskStatus
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return TaskStatus(s), true
	default:
		return "", false
	}
}

// Task is the task model. CreatedBy references the user that created the
// record and is set once at creation, controllers never update it.
type Task struct {
	bun.BaseModel `bun:"table:tasks,alias:tsk"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Title         string     `bun:"title,notnull" json:"title"`
	Description   string     `bun:"description" json:"description,omitempty"`
	Status        TaskStatus `bun:"status,notnull" json:"status"`
	CreatedBy     uuid.UUID  `bun:"created_by,notnull,type:uuid" json:"created_by"`
	Creator       *User      `bun:"rel:belongs-to,join:created_by=id" json:"creator,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// IsOwnedBy reports whether the given identity created this task.
func (t *Task) IsOwnedBy(identity Identity) bool {
	if t == nil || identity == nil {
		return false
	}
	return t.CreatedBy.String() == identity.ID()
}
