package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/daniyar/chatlist/internal/auth"
	"github.com/daniyar/chatlist/internal/database"
)

// GetChatroom is the destination the chat list navigates to when a row is
// selected.
func GetChatroom(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chatroomID := mux.Vars(r)["id"]
		userID, _ := auth.CurrentUserID(r.Context())

		isMember, err := database.IsMember(db, chatroomID, userID)
		if err != nil || !isMember {
			writeError(w, http.StatusForbidden, "not a member of this chatroom")
			return
		}

		chatroom, err := database.GetChatroomByID(db, chatroomID)
		if err != nil || chatroom == nil {
			writeError(w, http.StatusNotFound, "chatroom not found")
			return
		}

		writeJSON(w, http.StatusOK, chatroom)
	}
}

func CreateChatroom(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.CurrentUserID(r.Context())

		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		chatroom, err := database.CreateChatroom(db, req.Name, userID)
		if err != nil {
			slog.Error("failed to create chatroom", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if err := database.AddMember(db, chatroom.ID, userID); err != nil {
			slog.Error("failed to add creator to chatroom", "error", err)
		}

		writeJSON(w, http.StatusCreated, chatroom)
	}
}

func JoinChatroom(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chatroomID := mux.Vars(r)["id"]
		userID, _ := auth.CurrentUserID(r.Context())

		chatroom, err := database.GetChatroomByID(db, chatroomID)
		if err != nil || chatroom == nil {
			writeError(w, http.StatusNotFound, "chatroom not found")
			return
		}

		if err := database.AddMember(db, chatroomID, userID); err != nil {
			slog.Error("failed to join chatroom", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "joined"})
	}
}

func LeaveChatroom(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chatroomID := mux.Vars(r)["id"]
		userID, _ := auth.CurrentUserID(r.Context())

		if err := database.RemoveMember(db, chatroomID, userID); err != nil {
			slog.Error("failed to leave chatroom", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
	}
}
