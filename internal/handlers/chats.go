package handlers

import (
	"net/http"

	"github.com/daniyar/chatlist/internal/auth"
	"github.com/daniyar/chatlist/internal/chatlist"
)

const previewLimit = 80

// chatRow is one rendered list entry, keyed by its chatroom id. Href is
// where selecting the row navigates to.
type chatRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Timestamp string `json:"timestamp"`
	Preview   string `json:"preview"`
	Href      string `json:"href"`
}

type chatListView struct {
	Title   string    `json:"title"`
	Loading bool      `json:"loading"`
	Chats   []chatRow `json:"chats"`
}

// ChatroomPath is the navigation target for a selected chat row.
func ChatroomPath(id string) string {
	return "/api/chatrooms/" + id
}

// ListChats renders the chat list screen for the authenticated user: one
// fetch sequence per request, rows in store order under the fixed "Chats"
// header. A request without a session renders an empty list rather than
// failing.
func ListChats(store chatlist.MembershipStore, images chatlist.ImageSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.CurrentUserID(r.Context())

		screen := chatlist.NewScreen(store, images)
		screen.Load(r.Context(), userID)
		snap := screen.Snapshot()

		view := chatListView{
			Title:   "Chats",
			Loading: snap.Loading,
			Chats:   make([]chatRow, 0, len(snap.Chats)),
		}
		for _, c := range snap.Chats {
			avatar := c.LastMessage.Sender.AvatarURL
			if avatar == "" {
				avatar = chatlist.PlaceholderAvatarURL(c.LastMessage.Sender.Username)
			}
			view.Chats = append(view.Chats, chatRow{
				ID:        c.ID,
				Name:      c.Name,
				AvatarURL: avatar,
				Timestamp: chatlist.FormatTimestamp(c.LastMessage.CreatedAt),
				Preview:   chatlist.TruncatePreview(c.LastMessage.Content, previewLimit),
				Href:      ChatroomPath(c.ID),
			})
		}

		writeJSON(w, http.StatusOK, view)
	}
}
