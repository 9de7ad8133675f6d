package taskmanager

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Migrate creates the schema when it does not exist yet. Idempotent, safe to
// run on every startup.
func Migrate(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*User)(nil),
		(*Task)(nil),
	}

	for _, model := range models {
		_, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, errors.CategoryOperation, "failed to create schema")
		}
	}

	return nil
}

// SeedAdmin ensures an administrator account exists for the given
// credentials. Existing accounts are left untouched; the seed uses a
// deterministic id so repeated runs converge on the same row.
func SeedAdmin(ctx context.Context, repo RepositoryManager, username, email, password string, logger Logger) error {
	if logger == nil {
		logger = defLogger{}
	}

	if _, err := repo.Users().GetByIdentifier(ctx, email); err == nil {
		logger.Debug("admin account already present", "email", email)
		return nil
	}

	handler := NewRegisterUserHandler(repo)
	user, err := handler.Execute(ctx, RegisterUserMessage{
		Username:  username,
		Email:     email,
		Password:  password,
		Role:      RoleAdmin,
		UseHashid: true,
	})
	if err != nil {
		return errors.Wrap(err, errors.CategoryOperation, "failed to seed admin account")
	}

	logger.Info("seeded admin account", "id", user.ID, "email", user.Email)
	return nil
}
