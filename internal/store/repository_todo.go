package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/todo-keeper/internal/logger"
	"github.com/MKhiriev/todo-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// todoRepository is the PostgreSQL-backed implementation of [TodoRepository].
// Queries are assembled with squirrel so optional filters and partial
// updates don't need hand-written placeholder bookkeeping.
type todoRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListTodos returns the todos of filter.UserID ordered by creation time,
// optionally narrowed to a single status. An empty result is an empty,
// non-nil slice.
func (r *todoRepository) ListTodos(ctx context.Context, filter models.TodoFilter) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	where := sq.Eq{"user_id": filter.UserID}
	if filter.Status != nil {
		where["status"] = filter.Status.String()
	}

	query, args, err := r.builder.
		Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.ListTodos").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.ListTodos").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		var todo models.Todo
		if err = scanTodo(rows, &todo); err != nil {
			log.Err(err).Str("func", "*todoRepository.ListTodos").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		todos = append(todos, todo)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*todoRepository.ListTodos").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

func (r *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(todo.TableName()).
		Columns("id", "name", "description", "status", "user_id").
		Values(todo.ID, todo.Name, todo.Description, todo.Status.String(), todo.UserID).
		Suffix(returningTodo).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Msg("error building query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*todoRepository.CreateTodo", query, args)
}

func (r *todoRepository) FindTodoByID(ctx context.Context, id string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.FindTodoByID").Msg("error building query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*todoRepository.FindTodoByID", query, args)
}

// UpdateTodo applies the non-nil fields of update to the todo identified by
// update.ID and owned by update.UserID. updated_at is always bumped, even
// for an update with no field changes.
func (r *todoRepository) UpdateTodo(ctx context.Context, update models.TodoUpdate) (models.Todo, error) {
	log := logger.FromContext(ctx)

	b := r.builder.
		Update(models.Todo{}.TableName()).
		Set("updated_at", sq.Expr("NOW()"))
	if update.Name != nil {
		b = b.Set("name", *update.Name)
	}
	if update.Description != nil {
		b = b.Set("description", *update.Description)
	}
	if update.Status != nil {
		b = b.Set("status", update.Status.String())
	}

	query, args, err := b.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix(returningTodo).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateTodo").Msg("error building query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*todoRepository.UpdateTodo", query, args)
}

func (r *todoRepository) DeleteTodo(ctx context.Context, id, userID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(models.Todo{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returningTodo).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Msg("error building query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*todoRepository.DeleteTodo", query, args)
}

// queryOne runs a statement that yields at most one todo row.
// No row means [ErrTodoNotFound].
func (r *todoRepository) queryOne(ctx context.Context, fn, query string, args []any) (models.Todo, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error executing query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var todo models.Todo
	err := scanTodo(row, &todo)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Todo{}, ErrTodoNotFound
	case err != nil:
		log.Err(err).Str("func", fn).Msg("error scanning row")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return todo, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner, todo *models.Todo) error {
	var (
		description sql.NullString
		status      string
	)
	if err := s.Scan(&todo.ID, &todo.Name, &description, &status, &todo.UserID, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
		return err
	}

	todo.Status = models.TodoStatus(status)
	if description.Valid {
		todo.Description = &description.String
	}
	return nil
}
