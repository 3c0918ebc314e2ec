package domain

import "time"

// Note references its owner by id only. A user's collection is computed by
// querying on ownerId, so there is no back-reference list to keep in sync.
type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type AddNoteRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Title   string `json:"title" validate:"max=200"`
	Content string `json:"content"`
}
