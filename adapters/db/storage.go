package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"mytodo/core"
)

const taskColumns = `id, text, important, urgent, completed, owner_id, created_at, completed_at, deadline`

type DB struct {
	log  *slog.Logger
	conn *sqlx.DB
}

func New(log *slog.Logger, address string) (*DB, error) {
	db, err := sqlx.Connect("pgx", address)
	if err != nil {
		log.Error("connection problem", "address", address, "error", err)
		return nil, err
	}
	return &DB{log: log, conn: db}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Users

func (db *DB) CreateUser(ctx context.Context, username, passwordHash string) (core.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return core.User{}, core.ErrInvalidArgs
	}

	const q = `
		INSERT INTO users(username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at;
	`

	var u core.User
	if err := db.conn.QueryRowxContext(ctx, q, username, passwordHash).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return core.User{}, core.ErrUsernameTaken
		}
		return core.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (db *DB) GetUserByUsername(ctx context.Context, username string) (core.User, error) {
	// Exact, case-sensitive match.
	const q = `SELECT id, username, password_hash, created_at FROM users WHERE username = $1`

	var u core.User
	if err := db.conn.GetContext(ctx, &u, q, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.User{}, core.ErrUserNotFound
		}
		return core.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Tasks

func (db *DB) CreateTask(ctx context.Context, ownerID int64, text string, important, urgent bool, deadline *string) (core.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return core.Task{}, core.ErrEmptyTask
	}

	const q = `
		INSERT INTO tasks(text, important, urgent, owner_id, deadline)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + taskColumns + `;
	`

	var t core.Task
	err := db.conn.QueryRowxContext(ctx, q, text, important, urgent, ownerID, deadline).
		Scan(&t.ID, &t.Text, &t.Important, &t.Urgent, &t.Completed, &t.OwnerID, &t.CreatedAt, &t.CompletedAt, &t.Deadline)
	if err != nil {
		if isForeignKeyViolation(err) {
			return core.Task{}, core.ErrUserNotFound
		}
		return core.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

func (db *DB) ListTasks(ctx context.Context, ownerID int64) ([]core.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = $1 ORDER BY id DESC`

	var out []core.Task
	if err := db.conn.SelectContext(ctx, &out, q, ownerID); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

func (db *DB) ListTasksByFilter(ctx context.Context, ownerID int64, f core.ExportFilter) ([]core.Task, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = $1`)

	switch f {
	case core.FilterPending:
		sb.WriteString(" AND completed = FALSE")
	case core.FilterDone:
		sb.WriteString(" AND completed = TRUE")
	case core.FilterAll:
	default:
		return nil, core.ErrInvalidFilter
	}

	sb.WriteString(" ORDER BY id DESC")

	var out []core.Task
	if err := db.conn.SelectContext(ctx, &out, sb.String(), ownerID); err != nil {
		return nil, fmt.Errorf("list tasks by filter: %w", err)
	}
	return out, nil
}

// ToggleTask flips completed in a single statement so completed_at stays
// consistent with completed without an application-level transaction.
func (db *DB) ToggleTask(ctx context.Context, ownerID, taskID int64) (core.Task, error) {
	const q = `
		UPDATE tasks
		SET completed = NOT completed,
		    completed_at = CASE WHEN completed THEN NULL ELSE now() END
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + taskColumns + `;
	`

	var t core.Task
	err := db.conn.QueryRowxContext(ctx, q, taskID, ownerID).
		Scan(&t.ID, &t.Text, &t.Important, &t.Urgent, &t.Completed, &t.OwnerID, &t.CreatedAt, &t.CompletedAt, &t.Deadline)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Missing and foreign-owned are indistinguishable.
			return core.Task{}, core.ErrTaskNotFound
		}
		return core.Task{}, fmt.Errorf("toggle task: %w", err)
	}
	return t, nil
}

func (db *DB) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	const q = `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`

	res, err := db.conn.ExecContext(ctx, q, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return core.ErrTaskNotFound
	}
	return nil
}

// pg helpers

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
