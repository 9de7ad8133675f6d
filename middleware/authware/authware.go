// Package authware is the request level authentication gate: it extracts the
// bearer token, verifies it, resolves the subject to a stored identity, and
// attaches that identity to the request. Every failure along the way yields
// the same generic unauthorized response, the cause is only logged.
package authware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrTokenMissing means the request carried no usable Authorization
	// header. Distinct from validation failures for logging only.
	ErrTokenMissing = errors.New("missing or malformed authorization header")
)

// AuthClaims mirrors the claims interface from the root package without
// creating an import cycle
type AuthClaims interface {
	Subject() string
	UserID() string
	Role() string
	HasRole(role string) bool
}

// Identity mirrors the resolved identity surface handlers rely on
type Identity interface {
	ID() string
	Role() string
}

// TokenValidator validates tokens and extracts claims without tying the gate
// to a specific signing implementation
type TokenValidator interface {
	Validate(tokenString string) (AuthClaims, error)
}

// TokenValidatorFunc adapts a function into a TokenValidator.
type TokenValidatorFunc func(tokenString string) (AuthClaims, error)

func (f TokenValidatorFunc) Validate(tokenString string) (AuthClaims, error) {
	return f(tokenString)
}

// IdentityResolver maps a token subject to a live identity. Resolution runs
// on every request, a deleted account invalidates its outstanding tokens.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, subjectID string) (Identity, error)
}

// IdentityResolverFunc adapts a function into an IdentityResolver.
type IdentityResolverFunc func(ctx context.Context, subjectID string) (Identity, error)

func (f IdentityResolverFunc) ResolveIdentity(ctx context.Context, subjectID string) (Identity, error) {
	return f(ctx, subjectID)
}

// Logger is the minimal logging surface the gate needs
type Logger interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}

type Config struct {
	// Filter skips the gate for matching requests
	Filter func(*fiber.Ctx) bool

	// ErrorHandler converts gate failures into a response. The default is a
	// uniform generic 401 regardless of the failure.
	ErrorHandler func(*fiber.Ctx, error) error

	// TokenValidator is required
	TokenValidator TokenValidator

	// IdentityResolver is required
	IdentityResolver IdentityResolver

	// ContextEnricher propagates the resolved identity into the standard
	// request context for downstream code that never sees fiber.
	ContextEnricher func(ctx context.Context, identity Identity) context.Context

	// ContextKey is where the identity lands in the request locals
	ContextKey string

	// AuthScheme prefixes the credential in the Authorization header
	AuthScheme string

	Logger Logger
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Error(string, ...any) {}

// New builds the gate middleware. The gate is request scoped: nothing is
// cached between requests and the token is reverified from scratch each time.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)

	return func(c *fiber.Ctx) error {
		if cfg.Filter != nil && cfg.Filter(c) {
			return c.Next()
		}

		raw, err := TokenFromHeader(c.Get(fiber.HeaderAuthorization), cfg.AuthScheme)
		if err != nil {
			cfg.Logger.Debug("auth gate: no token", "path", c.Path())
			return cfg.ErrorHandler(c, err)
		}

		claims, err := cfg.TokenValidator.Validate(raw)
		if err != nil {
			cfg.Logger.Debug("auth gate: token rejected", "error", err)
			return cfg.ErrorHandler(c, err)
		}

		identity, err := cfg.IdentityResolver.ResolveIdentity(c.UserContext(), claims.UserID())
		if err != nil {
			cfg.Logger.Debug("auth gate: subject not resolvable", "subject", claims.UserID(), "error", err)
			return cfg.ErrorHandler(c, err)
		}

		c.Locals(cfg.ContextKey, identity)

		if cfg.ContextEnricher != nil {
			c.SetUserContext(cfg.ContextEnricher(c.UserContext(), identity))
		}

		return c.Next()
	}
}

// RequireRole gates a route on an exact role. It expects the authentication
// gate to have run first; a request without a resolved identity is rejected
// as unauthorized, a resolved identity with the wrong role as forbidden. The
// two statuses are deliberately distinct.
func RequireRole(contextKey, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := c.Locals(contextKey).(Identity)
		if !ok || identity == nil {
			return unauthorized(c)
		}

		if identity.Role() != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden",
			})
		}

		return c.Next()
	}
}

// TokenFromHeader strips the auth scheme prefix from a raw header value.
// A missing header, missing scheme, or empty credential is ErrTokenMissing.
func TokenFromHeader(header, authScheme string) (string, error) {
	if header == "" {
		return "", ErrTokenMissing
	}

	prefix := authScheme + " "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", ErrTokenMissing
	}

	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", ErrTokenMissing
	}

	return token, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Not authorized",
	})
}

func configDefault(config ...Config) (cfg Config) {
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.TokenValidator == nil {
		panic("AUTH: gate configuration: TokenValidator is required.")
	}

	if cfg.IdentityResolver == nil {
		panic("AUTH: gate configuration: IdentityResolver is required.")
	}

	if cfg.ErrorHandler == nil {
		// Uniform rejection: never tell the caller which step failed.
		cfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		}
	}

	if cfg.ContextKey == "" {
		cfg.ContextKey = "identity"
	}

	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}

	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}

	return cfg
}
