package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/daniyar/chatlist/internal/models"
)

// Store is the postgres-backed implementation of the chat list screen's
// MembershipStore collaborator.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// MembershipsForUser returns every membership of userID joined to its
// chatroom's id and name. The join is inner on purpose: a membership whose
// chatroom is gone does not produce a row. Return order is join time, which
// callers treat as authoritative and do not re-sort.
func (s *Store) MembershipsForUser(ctx context.Context, userID string) ([]models.Membership, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.name, cm.joined_at
		FROM chatroom_members cm
		JOIN chatrooms c ON c.id = cm.chatroom_id
		WHERE cm.user_id = $1
		ORDER BY cm.joined_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships: %w", err)
	}
	defer rows.Close()

	var memberships []models.Membership
	for rows.Next() {
		var m models.Membership
		if err := rows.Scan(&m.ChatroomID, &m.ChatroomName, &m.JoinedAt); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read memberships: %w", err)
	}
	if memberships == nil {
		memberships = []models.Membership{}
	}
	return memberships, nil
}
