package taskmanager

import (
	"github.com/gofiber/fiber/v2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// CreateTaskRequest is the task creation payload. Status defaults to Pending
// when omitted.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (r CreateTaskRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Title, validation.Required),
			validation.Field(&r.Status, validation.In(StatusPending, StatusInProgress, StatusDone)),
		)
	}, "Invalid task payload")
}

// UpdateTaskRequest carries a partial update. Nil means leave the field
// alone; an explicit empty string is an update like any other.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (r UpdateTaskRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		fields := []*validation.FieldRules{}
		if r.Status != nil {
			fields = append(fields,
				validation.Field(&r.Status,
					validation.Required,
					validation.In(StatusPending, StatusInProgress, StatusDone),
				),
			)
		}
		if len(fields) == 0 {
			return nil
		}
		return validation.ValidateStruct(&r, fields...)
	}, "Invalid task payload")
}

// TaskController exposes task CRUD over HTTP. Reads are open to any
// authenticated identity; writes go through the ownership policy.
type TaskController struct {
	tasks  Tasks
	policy TaskPolicy
	logger Logger
}

func NewTaskController(tasks Tasks, policy TaskPolicy, logger Logger) *TaskController {
	if logger == nil {
		logger = defLogger{}
	}

	return &TaskController{
		tasks:  tasks,
		policy: policy,
		logger: logger,
	}
}

// List returns a page of tasks across all owners, newest first. Page and
// limit fall back to sane defaults on missing or garbage input rather than
// erroring.
func (t *TaskController) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", defaultPage)
	if page < 1 {
		page = defaultPage
	}

	limit := c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	tasks, total, err := t.tasks.List(c.UserContext(), page, limit)
	if err != nil {
		return err
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return c.JSON(TaskListResponse{
		Tasks:      tasks,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	})
}

// Get returns a single task by id.
func (t *TaskController) Get(c *fiber.Ctx) error {
	task, err := t.tasks.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(task)
}

// Create records a new task owned by the calling identity.
func (t *TaskController) Create(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	var payload CreateTaskRequest
	if err := c.BodyParser(&payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "Invalid request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	ownerID, err := uuid.Parse(identity.ID())
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "Malformed identity id").
			WithCode(errors.CodeInternal)
	}

	status := payload.Status
	if status == "" {
		status = StatusPending
	}

	task, err := t.tasks.Create(c.UserContext(), &Task{
		Title:       payload.Title,
		Description: payload.Description,
		Status:      status,
		CreatedBy:   ownerID,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// Update applies a partial update. The owner and any admin may update;
// everyone else gets a forbidden response. Ownership never changes on
// update, regardless of who performs it.
func (t *TaskController) Update(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	task, err := t.tasks.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	if !t.policy.CanModify(identity, task) {
		t.logger.Debug("task update denied", "task", task.ID, "identity", identity.ID())
		return ErrTaskForbidden
	}

	var payload UpdateTaskRequest
	if err := c.BodyParser(&payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "Invalid request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	if payload.Title != nil {
		task.Title = *payload.Title
	}
	if payload.Description != nil {
		task.Description = *payload.Description
	}
	if payload.Status != nil {
		task.Status = *payload.Status
	}

	updated, err := t.tasks.Save(c.UserContext(), task)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// Delete removes a task. The route is gated to admins before this handler
// runs; existence is still checked so a missing task reads as 404, not as a
// silent success.
func (t *TaskController) Delete(c *fiber.Ctx) error {
	task, err := t.tasks.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	if err := t.tasks.DeleteByID(c.UserContext(), task.ID); err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "Task removed"})
}

// RegisterTaskRoutes mounts the task endpoints. Every route runs behind the
// authentication gate; deletion additionally requires the admin role.
func RegisterTaskRoutes(router fiber.Router, controller *TaskController, protect, adminOnly fiber.Handler) {
	router.Get("/tasks", protect, controller.List)
	router.Post("/tasks", protect, controller.Create)
	router.Get("/tasks/:id", protect, controller.Get)
	router.Put("/tasks/:id", protect, controller.Update)
	router.Delete("/tasks/:id", protect, adminOnly, controller.Delete)
}

// identityFrom pulls the identity the authentication gate resolved for this
// request. Absence means the route was wired without the gate.
func identityFrom(c *fiber.Ctx) (Identity, error) {
	if identity, ok := c.Locals(IdentityContextKey).(Identity); ok && identity != nil {
		return identity, nil
	}

	if identity, ok := IdentityFromContext(c.UserContext()); ok {
		return identity, nil
	}

	return nil, errors.New("No identity resolved for request", errors.CategoryAuth).
		WithCode(errors.CodeUnauthorized)
}
