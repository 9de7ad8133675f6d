package taskmanager

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Tasks is the task repository. The persistence layer is the sole arbiter of
// consistency, concurrent saves of the same task are last write wins.
type Tasks interface {
	repository.Repository[*Task]

	FindByID(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context, page, limit int) ([]*Task, int, error)
	Save(ctx context.Context, record *Task) (*Task, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type tasks struct {
	repository.Repository[*Task]
	db *bun.DB
}

var (
	_ Tasks                        = (*tasks)(nil)
	_ repository.Repository[*Task] = (*tasks)(nil)
)

func NewTasksRepository(db *bun.DB) Tasks {
	repo := repository.NewRepository[*Task](db, repository.ModelHandlers[*Task]{
		NewRecord: func() *Task { return &Task{} },
		GetID: func(t *Task) uuid.UUID {
			if t == nil {
				return uuid.Nil
			}
			return t.ID
		},
		SetID: func(t *Task, id uuid.UUID) {
			if t != nil {
				t.ID = id
			}
		},
	})

	return &tasks{
		Repository: repo,
		db:         db,
	}
}

// FindByID loads a task by id. Unparsable ids resolve to not found rather
// than an input error, the record could not exist either way.
func (a *tasks) FindByID(ctx context.Context, id string) (*Task, error) {
	tid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, repository.NewRecordNotFound().
			WithMetadata(map[string]any{"id": id})
	}

	record := &Task{}
	err = a.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", tid).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{"id": id})
		}
		return nil, err
	}

	return record, nil
}

// List returns one page of tasks ordered by creation time descending, plus
// the total count across all pages.
func (a *tasks) List(ctx context.Context, page, limit int) ([]*Task, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var records []*Task
	total, err := a.db.NewSelect().
		Model(&records).
		OrderExpr("?TableAlias.created_at DESC").
		OrderExpr("?TableAlias.id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		ScanAndCount(ctx)

	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (a *tasks) Create(ctx context.Context, record *Task, criteria ...repository.InsertCriteria) (*Task, error) {
	return a.CreateTx(ctx, a.db, record, criteria...)
}

func (a *tasks) CreateTx(ctx context.Context, tx bun.IDB, record *Task, criteria ...repository.InsertCriteria) (*Task, error) {
	prepareTaskDefaults(record)
	return a.Repository.CreateTx(ctx, tx, record, criteria...)
}

// Save persists mutated fields of an existing record keyed by id.
func (a *tasks) Save(ctx context.Context, record *Task) (*Task, error) {
	now := time.Now()
	record.UpdatedAt = &now
	return a.Repository.Update(ctx, record, repository.UpdateByID(record.ID.String()))
}

func (a *tasks) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := a.db.NewDelete().
		Model((*Task)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func prepareTaskDefaults(record *Task) {
	if record == nil {
		return
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	if record.Status == "" {
		record.Status = StatusPending
	}

	if record.CreatedAt == nil {
		now := time.Now()
		record.CreatedAt = &now
	}
}
