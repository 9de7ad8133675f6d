package taskmanager

import (
	"github.com/gofiber/fiber/v2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/goliatone/go-errors"
)

// LoginRequest is the credentials payload. Identifier is an email address.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Email, validation.Required, is.Email),
			validation.Field(&r.Password, validation.Required),
		)
	}, "Invalid login payload")
}

// RegisterRequest is the public signup payload. Role is never accepted from
// the wire; every signup lands as a regular member.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Username, validation.Required, validation.Length(2, 100)),
			validation.Field(&r.Email, validation.Required, is.Email),
			validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
		)
	}, "Invalid registration payload")
}

// RegisteredResponse echoes the created account without credentials.
type RegisteredResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthController exposes login and registration over HTTP.
type AuthController struct {
	auther   Authenticator
	register *RegisterUserHandler
	logger   Logger
}

// NewAuthController builds the controller. The register handler owns its own
// transaction; the controller only translates payloads and errors.
func NewAuthController(auther Authenticator, register *RegisterUserHandler, logger Logger) *AuthController {
	if logger == nil {
		logger = defLogger{}
	}

	return &AuthController{
		auther:   auther,
		register: register,
		logger:   logger,
	}
}

// Login issues a token for valid credentials. Any failure, unknown email or
// wrong password alike, produces the same unauthorized response.
func (a *AuthController) Login(c *fiber.Ctx) error {
	var payload LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "Invalid request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	token, err := a.auther.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		a.logger.Debug("login rejected", "email", payload.Email)
		return err
	}

	return c.JSON(TokenResponse{Token: token})
}

// Register creates a member account.
func (a *AuthController) Register(c *fiber.Ctx) error {
	var payload RegisterRequest
	if err := c.BodyParser(&payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "Invalid request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	user, err := a.register.Execute(c.UserContext(), RegisterUserMessage{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     RoleMember,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(RegisteredResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	})
}

// RegisterAuthRoutes mounts the public auth endpoints.
func RegisterAuthRoutes(router fiber.Router, controller *AuthController) {
	router.Post("/auth/register", controller.Register)
	router.Post("/auth/login", controller.Login)
}
