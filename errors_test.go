package taskmanager_test

import (
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taskmanager "github.com/vaishnavvp/task-manager-backend"
)

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category goerrors.Category
		textCode string
	}{
		{"missing token", taskmanager.ErrMissingToken, goerrors.CategoryAuth, "TOKEN_MISSING"},
		{"invalid token", taskmanager.ErrTokenInvalid, goerrors.CategoryAuth, "TOKEN_INVALID"},
		{"identity not found", taskmanager.ErrIdentityNotFound, goerrors.CategoryAuth, "IDENTITY_NOT_FOUND"},
		{"bad credentials", taskmanager.ErrMismatchedHashAndPassword, goerrors.CategoryAuth, "INVALID_CREDENTIALS"},
		{"task forbidden", taskmanager.ErrTaskForbidden, goerrors.CategoryAuthz, "TASK_FORBIDDEN"},
		{"admin only", taskmanager.ErrAdminOnly, goerrors.CategoryAuthz, "ADMIN_ONLY"},
		{"task not found", taskmanager.ErrTaskNotFound, goerrors.CategoryNotFound, "TASK_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var richErr *goerrors.Error
			require.True(t, goerrors.As(tt.err, &richErr))
			assert.Equal(t, tt.category, richErr.Category)
			assert.Equal(t, tt.textCode, richErr.TextCode)
		})
	}
}

// Auth and authz failures must stay distinguishable: one maps to 401, the
// other to 403.
func TestAuthAndAuthzAreDistinct(t *testing.T) {
	var invalidToken, forbidden *goerrors.Error
	require.True(t, goerrors.As(taskmanager.ErrTokenInvalid, &invalidToken))
	require.True(t, goerrors.As(taskmanager.ErrTaskForbidden, &forbidden))

	assert.NotEqual(t, invalidToken.Category, forbidden.Category)
}
