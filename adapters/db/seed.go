package db

import (
	"context"
	"fmt"

	"mytodo/core"
)

type seedTask struct {
	text      string
	important bool
	urgent    bool
	completed bool
	owner     int // index into seed usernames
	deadline  string
}

var seedUsernames = []string{"vicky", "admin", "testuser"}

var seedTasks = []seedTask{
	{"Complete project documentation", true, true, false, 0, "2025-11-30"},
	{"Review code changes", true, false, false, 0, "2025-12-01"},
	{"Team meeting preparation", false, true, false, 0, "2025-11-28"},
	{"Update database schema", false, false, true, 0, "2025-11-25"},
	{"Setup production environment", true, true, false, 1, "2025-12-05"},
	{"Write unit tests", true, false, false, 1, "2025-12-03"},
	{"Fix login bug", false, true, true, 1, "2025-11-26"},
	{"Learn SQL basics", false, false, false, 2, "2025-12-10"},
}

// Seed inserts demo users (shared password "password123") and sample tasks.
// It is a no-op when any user already exists.
func (db *DB) Seed(ctx context.Context, hasher core.Hasher) error {
	var count int
	if err := db.conn.GetContext(ctx, &count, `SELECT count(*) FROM users`); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash("password123")
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	owners := make([]int64, 0, len(seedUsernames))
	for _, name := range seedUsernames {
		u, err := db.CreateUser(ctx, name, hash)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", name, err)
		}
		owners = append(owners, u.ID)
	}

	for _, st := range seedTasks {
		deadline := st.deadline
		t, err := db.CreateTask(ctx, owners[st.owner], st.text, st.important, st.urgent, &deadline)
		if err != nil {
			return fmt.Errorf("seed task %q: %w", st.text, err)
		}
		if st.completed {
			if _, err := db.ToggleTask(ctx, owners[st.owner], t.ID); err != nil {
				return fmt.Errorf("seed task %q: %w", st.text, err)
			}
		}
	}

	db.log.Info("seeded demo data", "users", len(owners), "tasks", len(seedTasks))
	return nil
}
