package taskmanager_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	taskmanager "github.com/vaishnavvp/task-manager-backend"
)

// MockIdentity implements taskmanager.Identity
type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) ID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Username() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Email() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Role() string {
	args := m.Called()
	return args.String(0)
}

// staticIdentity is a plain value identity for tests that do not care about
// call expectations
type staticIdentity struct {
	id       string
	username string
	email    string
	role     string
}

func (s staticIdentity) ID() string       { return s.id }
func (s staticIdentity) Username() string { return s.username }
func (s staticIdentity) Email() string    { return s.email }
func (s staticIdentity) Role() string     { return s.role }

// MockUserStore implements taskmanager.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByIdentifier(ctx context.Context, identifier string) (*taskmanager.User, error) {
	args := m.Called(ctx, identifier)
	if user := args.Get(0); user != nil {
		return user.(*taskmanager.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) FindByID(ctx context.Context, id string) (*taskmanager.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*taskmanager.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockIdentityProvider implements taskmanager.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, identifier, password string) (taskmanager.Identity, error) {
	args := m.Called(ctx, identifier, password)
	if identity := args.Get(0); identity != nil {
		return identity.(taskmanager.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByID(ctx context.Context, subjectID string) (taskmanager.Identity, error) {
	args := m.Called(ctx, subjectID)
	if identity := args.Get(0); identity != nil {
		return identity.(taskmanager.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

// testConfig implements taskmanager.Config with fixed values
type testConfig struct {
	signingKey      string
	tokenExpiration int
}

func newTestConfig() testConfig {
	return testConfig{
		signingKey:      "test-signing-key",
		tokenExpiration: 1,
	}
}

func (c testConfig) GetSigningKey() string    { return c.signingKey }
func (c testConfig) GetSigningMethod() string { return "HS256" }
func (c testConfig) GetContextKey() string    { return "identity" }
func (c testConfig) GetTokenExpiration() int  { return c.tokenExpiration }
func (c testConfig) GetAuthScheme() string    { return "Bearer" }
func (c testConfig) GetIssuer() string        { return "test-issuer" }
func (c testConfig) GetAudience() []string    { return []string{"test-audience"} }
