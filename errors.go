package taskmanager

import (
	"github.com/goliatone/go-errors"
)

// ErrMissingToken is returned when a request carries no bearer credentials.
// It is kept distinct from ErrTokenInvalid for logging, both collapse into
// the same generic unauthorized response at the boundary.
var ErrMissingToken = errors.New("missing or malformed authorization header", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("TOKEN_MISSING")

// ErrTokenInvalid covers malformed payloads, bad signatures, and expired
// tokens alike. Callers must not be able to tell which check failed.
var ErrTokenInvalid = errors.New("invalid or expired token", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("TOKEN_INVALID")

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("IDENTITY_NOT_FOUND")

// ErrMismatchedHashAndPassword is returned for any failed credential check,
// unknown account and wrong password included
var ErrMismatchedHashAndPassword = errors.New("invalid credentials", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("INVALID_CREDENTIALS")

// ErrNoEmptyString guards hashing empty passwords
var ErrNoEmptyString = errors.New("value should not be an empty string", errors.CategoryBadInput).
	WithCode(errors.CodeBadRequest)

// ErrTaskForbidden rejects a known identity without privilege over a task
var ErrTaskForbidden = errors.New("not authorized to modify this task", errors.CategoryAuthz).
	WithCode(errors.CodeForbidden).
	WithTextCode("TASK_FORBIDDEN")

// ErrAdminOnly rejects non admin identities from admin gated operations
var ErrAdminOnly = errors.New("admin only", errors.CategoryAuthz).
	WithCode(errors.CodeForbidden).
	WithTextCode("ADMIN_ONLY")

// ErrTaskNotFound is returned when a task id resolves to no record
var ErrTaskNotFound = errors.New("task not found", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound).
	WithTextCode("TASK_NOT_FOUND")
