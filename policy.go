package taskmanager

// TaskPolicy decides what an authenticated identity may do with a task.
// It is stateless: the same identity and task always yield the same answer.
type TaskPolicy struct{}

// NewTaskPolicy returns the task access policy
func NewTaskPolicy() TaskPolicy {
	return TaskPolicy{}
}

// CanModify is true iff the identity owns the task or holds the admin role.
func (TaskPolicy) CanModify(identity Identity, task *Task) bool {
	if identity == nil || task == nil {
		return false
	}
	if task.IsOwnedBy(identity) {
		return true
	}
	return UserRole(identity.Role()) == RoleAdmin
}

// CanDelete is admin only, regardless of ownership.
func (TaskPolicy) CanDelete(identity Identity) bool {
	if identity == nil {
		return false
	}
	return UserRole(identity.Role()) == RoleAdmin
}
