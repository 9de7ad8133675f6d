package taskmanager

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		input string
		want  TaskStatus
		ok    bool
	}{
		{"Pending", StatusPending, true},
		{"In Progress", StatusInProgress, true},
		{"Done", StatusDone, true},
		{"pending", "", false},
		{"done", "", false},
		{"Archived", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseTaskStatus(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskIsOwnedBy(t *testing.T) {
	ownerID := uuid.New()
	task := &Task{ID: uuid.New(), CreatedBy: ownerID}

	t.Run("owner matches", func(t *testing.T) {
		assert.True(t, task.IsOwnedBy(ownerIdentity{ownerID.String()}))
	})

	t.Run("different identity", func(t *testing.T) {
		assert.False(t, task.IsOwnedBy(ownerIdentity{uuid.NewString()}))
	})

	t.Run("nil task", func(t *testing.T) {
		var missing *Task
		assert.False(t, missing.IsOwnedBy(ownerIdentity{ownerID.String()}))
	})

	t.Run("nil identity", func(t *testing.T) {
		assert.False(t, task.IsOwnedBy(nil))
	})
}

type ownerIdentity struct {
	id string
}

func (o ownerIdentity) ID() string       { return o.id }
func (o ownerIdentity) Username() string { return "owner" }
func (o ownerIdentity) Email() string    { return "owner@example.com" }
func (o ownerIdentity) Role() string     { return string(RoleMember) }
