package core

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Task struct {
	ID          int64      `db:"id" json:"id"`
	Text        string     `db:"text" json:"text"`
	Important   bool       `db:"important" json:"important"`
	Urgent      bool       `db:"urgent" json:"urgent"`
	Completed   bool       `db:"completed" json:"completed"`
	OwnerID     int64      `db:"owner_id" json:"user_id"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at"`
	Deadline    *string    `db:"deadline" json:"deadline"`
}

// Priority derives the task's priority class from its flags.
func (t Task) Priority() Priority {
	return Classify(t.Important, t.Urgent)
}

// Session is the identity attached to an authenticated request.
type Session struct {
	UserID   int64
	Username string
}
