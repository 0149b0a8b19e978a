package domain

import "time"

// Comment belongs to the session identity that created it. Ownership is a
// plain token comparison, not an authenticated user identity.
type Comment struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	SessionID string    `json:"-"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
