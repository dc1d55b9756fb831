package storage

import "time"

// InboxMessage is one entry in the suggestion box. Anyone can leave one;
// reading and managing them requires login.
type InboxMessage struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
