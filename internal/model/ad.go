package model

import "time"

// Ad is a classified listing owned by exactly one user.
type Ad struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"creation_time"`
	UserID      int       `db:"user_id" json:"user_id"`
}
