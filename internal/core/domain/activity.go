package domain

import "time"

// Activity is a published announcement. Activities are immutable once
// created; there is no edit or delete path.
type Activity struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	PublishedAt time.Time `db:"published_at"`
}

// NewActivity assigns the publication timestamp server-side at creation.
func NewActivity(title, description string) *Activity {
	return &Activity{
		Title:       title,
		Description: description,
		PublishedAt: time.Now().UTC(),
	}
}
