package models

type Sender struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// LastMessage is the preview line shown under a chatroom's name.
// CreatedAt is an RFC 3339 timestamp, or "" when there is nothing to show.
type LastMessage struct {
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	Sender    Sender `json:"sender"`
}

// ChatroomSummary is one row of the chat list. It is derived display
// state: rebuilt wholesale on every fetch, never persisted.
type ChatroomSummary struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	LastMessage LastMessage `json:"last_message"`
}
