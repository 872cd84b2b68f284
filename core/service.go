package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const minPasswordLen = 6

// DB is the storage port the service delegates to. Every task operation is
// owner-scoped: a task that exists but belongs to another owner behaves
// exactly like a missing one.
type DB interface {
	Ping(ctx context.Context) error

	// users
	CreateUser(ctx context.Context, username, passwordHash string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)

	// tasks
	CreateTask(ctx context.Context, ownerID int64, text string, important, urgent bool, deadline *string) (Task, error)
	ListTasks(ctx context.Context, ownerID int64) ([]Task, error)
	ListTasksByFilter(ctx context.Context, ownerID int64, f ExportFilter) ([]Task, error)
	ToggleTask(ctx context.Context, ownerID, taskID int64) (Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID int64) error
}

// Hasher is the opaque password hash/verify capability.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

type Service struct {
	db     DB
	hasher Hasher
}

func NewService(db DB, hasher Hasher) *Service {
	return &Service{
		db:     db,
		hasher: hasher,
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Auth

func (s *Service) SignUp(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrMissingCredentials
	}
	if len(password) < minPasswordLen {
		return User{}, ErrWeakPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.db.CreateUser(ctx, username, hash)
}

// Login verifies credentials. An unknown username and a wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrMissingCredentials
	}

	u, err := s.db.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if err := s.hasher.Verify(u.PasswordHash, password); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Tasks

func (s *Service) CreateTask(ctx context.Context, ownerID int64, text string, important, urgent bool, deadline *string) (Task, error) {
	if ownerID <= 0 {
		return Task{}, ErrInvalidArgs
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyTask
	}
	return s.db.CreateTask(ctx, ownerID, text, important, urgent, deadline)
}

func (s *Service) ListTasks(ctx context.Context, ownerID int64) ([]Task, error) {
	if ownerID <= 0 {
		return nil, ErrInvalidArgs
	}
	return s.db.ListTasks(ctx, ownerID)
}

// ExportTasks returns the owner's tasks matching the filter, newest first,
// for the spreadsheet renderer.
func (s *Service) ExportTasks(ctx context.Context, ownerID int64, f ExportFilter) ([]Task, error) {
	if ownerID <= 0 {
		return nil, ErrInvalidArgs
	}
	if _, ok := ParseExportFilter(string(f)); !ok {
		return nil, ErrInvalidFilter
	}
	return s.db.ListTasksByFilter(ctx, ownerID, f)
}

func (s *Service) ToggleTask(ctx context.Context, ownerID, taskID int64) (Task, error) {
	if ownerID <= 0 || taskID <= 0 {
		return Task{}, ErrTaskNotFound
	}
	return s.db.ToggleTask(ctx, ownerID, taskID)
}

func (s *Service) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	if ownerID <= 0 || taskID <= 0 {
		return ErrTaskNotFound
	}
	return s.db.DeleteTask(ctx, ownerID, taskID)
}
