package models

import "time"

type Chatroom struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Membership is one row of the chatroom list query: a membership of the
// current user joined to its chatroom's identity. Memberships whose
// chatroom no longer resolves are excluded by the inner join.
type Membership struct {
	ChatroomID   string    `json:"chatroom_id"`
	ChatroomName string    `json:"chatroom_name"`
	JoinedAt     time.Time `json:"joined_at"`
}
