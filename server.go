package taskmanager

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	recoverware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/uptrace/bun"

	"github.com/vaishnavvp/task-manager-backend/middleware/authware"
)

// AppOptions wires the HTTP application together.
type AppOptions struct {
	Auth         Config
	DB           *bun.DB
	AllowOrigins string
	Logger       Logger
}

// App bundles the assembled fiber application with the services behind it,
// so callers and tests can reach both.
type App struct {
	Fiber  *fiber.App
	Repo   RepositoryManager
	Auther *Auther
	Logger Logger
}

// NewApp assembles the full HTTP surface: auth endpoints, the authentication
// gate, and the task routes behind it.
func NewApp(opts AppOptions) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = defLogger{}
	}

	repo := NewRepositoryManager(opts.DB)
	if err := repo.Validate(); err != nil {
		return nil, err
	}

	provider := NewUserProvider(repo.Users()).WithLogger(logger)
	auther := NewAuthenticator(provider, opts.Auth).WithLogger(logger)
	registerUser := NewRegisterUserHandler(repo)

	app := fiber.New(fiber.Config{
		AppName:      "task-manager",
		ErrorHandler: NewErrorHandler(ErrorHandlerConfig{Logger: logger}),
	})

	app.Use(recoverware.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Task Manager API is running")
	})

	api := app.Group("/api")

	RegisterAuthRoutes(api, NewAuthController(auther, registerUser, logger))

	contextKey := opts.Auth.GetContextKey()
	if contextKey == "" {
		contextKey = IdentityContextKey
	}

	tokenService := auther.TokenService()
	protect := authware.New(authware.Config{
		ContextKey: contextKey,
		AuthScheme: opts.Auth.GetAuthScheme(),
		Logger:     logger,
		TokenValidator: authware.TokenValidatorFunc(func(raw string) (authware.AuthClaims, error) {
			claims, err := tokenService.Validate(raw)
			if err != nil {
				return nil, err
			}
			return claims, nil
		}),
		IdentityResolver: authware.IdentityResolverFunc(func(ctx context.Context, subjectID string) (authware.Identity, error) {
			identity, err := provider.FindIdentityByID(ctx, subjectID)
			if err != nil {
				return nil, err
			}
			return identity, nil
		}),
		ContextEnricher: func(ctx context.Context, identity authware.Identity) context.Context {
			if full, ok := identity.(Identity); ok {
				return WithIdentityContext(ctx, full)
			}
			return ctx
		},
	})
	adminOnly := authware.RequireRole(contextKey, string(RoleAdmin))

	RegisterTaskRoutes(api, NewTaskController(repo.Tasks(), NewTaskPolicy(), logger), protect, adminOnly)

	return &App{
		Fiber:  app,
		Repo:   repo,
		Auther: auther,
		Logger: logger,
	}, nil
}

// Listen serves the application until Shutdown is called.
func (a *App) Listen(address string) error {
	return a.Fiber.Listen(address)
}

// Shutdown drains in flight requests and stops the listener.
func (a *App) Shutdown() error {
	return a.Fiber.Shutdown()
}
