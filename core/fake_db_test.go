package core_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"mytodo/core"
)

type fakeDB struct {
	mu sync.RWMutex

	nextUserID int64
	nextTaskID int64

	users map[int64]core.User
	tasks map[int64]core.Task
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		nextUserID: 1,
		nextTaskID: 1,
		users:      make(map[int64]core.User),
		tasks:      make(map[int64]core.Task),
	}
}

func cloneTask(t core.Task) core.Task {
	out := t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		out.CompletedAt = &at
	}
	if t.Deadline != nil {
		d := *t.Deadline
		out.Deadline = &d
	}
	return out
}

func (db *fakeDB) Ping(context.Context) error {
	return nil
}

func (db *fakeDB) CreateUser(_ context.Context, username, passwordHash string) (core.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return core.User{}, core.ErrInvalidArgs
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return core.User{}, core.ErrUsernameTaken
		}
	}

	id := db.nextUserID
	db.nextUserID++

	user := core.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	db.users[id] = user

	return user, nil
}

func (db *fakeDB) GetUserByUsername(_ context.Context, username string) (core.User, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return core.User{}, core.ErrUserNotFound
}

func (db *fakeDB) CreateTask(_ context.Context, ownerID int64, text string, important, urgent bool, deadline *string) (core.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return core.Task{}, core.ErrEmptyTask
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.users[ownerID]; !ok {
		return core.Task{}, core.ErrUserNotFound
	}

	id := db.nextTaskID
	db.nextTaskID++

	task := core.Task{
		ID:        id,
		Text:      text,
		Important: important,
		Urgent:    urgent,
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
	}
	if deadline != nil {
		d := *deadline
		task.Deadline = &d
	}
	db.tasks[id] = task

	return cloneTask(task), nil
}

func (db *fakeDB) listOwned(ownerID int64, keep func(core.Task) bool) []core.Task {
	var out []core.Task
	for _, t := range db.tasks {
		if t.OwnerID == ownerID && keep(t) {
			out = append(out, cloneTask(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (db *fakeDB) ListTasks(_ context.Context, ownerID int64) ([]core.Task, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.listOwned(ownerID, func(core.Task) bool { return true }), nil
}

func (db *fakeDB) ListTasksByFilter(_ context.Context, ownerID int64, f core.ExportFilter) ([]core.Task, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	switch f {
	case core.FilterPending:
		return db.listOwned(ownerID, func(t core.Task) bool { return !t.Completed }), nil
	case core.FilterDone:
		return db.listOwned(ownerID, func(t core.Task) bool { return t.Completed }), nil
	case core.FilterAll:
		return db.listOwned(ownerID, func(core.Task) bool { return true }), nil
	default:
		return nil, core.ErrInvalidFilter
	}
}

func (db *fakeDB) ToggleTask(_ context.Context, ownerID, taskID int64) (core.Task, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	t, ok := db.tasks[taskID]
	if !ok || t.OwnerID != ownerID {
		return core.Task{}, core.ErrTaskNotFound
	}

	t.Completed = !t.Completed
	if t.Completed {
		now := time.Now()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
	db.tasks[taskID] = t

	return cloneTask(t), nil
}

func (db *fakeDB) DeleteTask(_ context.Context, ownerID, taskID int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	t, ok := db.tasks[taskID]
	if !ok || t.OwnerID != ownerID {
		return core.ErrTaskNotFound
	}
	delete(db.tasks, t.ID)
	return nil
}

// fakeHasher avoids bcrypt cost in unit tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("hash mismatch")
	}
	return nil
}
