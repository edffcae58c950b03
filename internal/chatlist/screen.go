// Package chatlist holds the view model behind the chat list screen: it
// fetches the signed-in user's chatroom memberships, decorates them with a
// batch of stock scenery photos, and exposes the resulting rows for
// rendering.
package chatlist

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/daniyar/chatlist/internal/models"
)

const imageTopic = "scenery"

// Placeholder preview line. Real last messages would come from a message
// repository; until one exists every row carries this synthesized preview.
const (
	placeholderContent = "No messages yet"
	placeholderSender  = "Unknown"
)

type MembershipStore interface {
	MembershipsForUser(ctx context.Context, userID string) ([]models.Membership, error)
}

type ImageSource interface {
	Batch(ctx context.Context, topic string) ([]string, error)
}

// Screen holds the transient state of one chat list instance. The list is
// rebuilt from scratch on every Load and discarded with the Screen.
type Screen struct {
	store  MembershipStore
	images ImageSource

	mu      sync.Mutex
	gen     uint64
	loading bool
	chats   []models.ChatroomSummary
}

func NewScreen(store MembershipStore, images ImageSource) *Screen {
	return &Screen{
		store:  store,
		images: images,
		chats:  []models.ChatroomSummary{},
	}
}

// Snapshot is an immutable view of the screen state for rendering.
type Snapshot struct {
	Loading bool
	Chats   []models.ChatroomSummary
}

func (s *Screen) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	chats := make([]models.ChatroomSummary, len(s.chats))
	copy(chats, s.chats)
	return Snapshot{Loading: s.loading, Chats: chats}
}

// Load runs one fetch sequence for userID and replaces the chat list with
// the result. Each call supersedes any still-running one: a fetch that
// finishes after a newer Load started is discarded, so stale responses
// never overwrite fresher state. On failure the error is logged and the
// list is cleared; the loading flag always ends false for the latest Load.
func (s *Screen) Load(ctx context.Context, userID string) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.mu.Unlock()

	chats, err := s.fetch(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.loading = false
	if err != nil {
		slog.Error("chat list fetch failed", "user_id", userID, "error", err)
		s.chats = []models.ChatroomSummary{}
		return
	}
	s.chats = chats
}

func (s *Screen) fetch(ctx context.Context, userID string) ([]models.ChatroomSummary, error) {
	if userID == "" {
		// No session, nothing to ask the backend for.
		return []models.ChatroomSummary{}, nil
	}
	memberships, err := s.store.MembershipsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("memberships: %w", err)
	}
	images, err := s.images.Batch(ctx, imageTopic)
	if err != nil {
		return nil, fmt.Errorf("image batch: %w", err)
	}
	return buildSummaries(memberships, images), nil
}

// buildSummaries turns membership rows into display rows, in store order.
// The i-th row gets images[i mod len(images)] as its decorative avatar;
// an empty batch leaves every avatar unset.
func buildSummaries(memberships []models.Membership, images []string) []models.ChatroomSummary {
	chats := make([]models.ChatroomSummary, 0, len(memberships))
	for i, m := range memberships {
		sender := models.Sender{Username: placeholderSender}
		if len(images) > 0 {
			sender.AvatarURL = images[i%len(images)]
		}
		chats = append(chats, models.ChatroomSummary{
			ID:   m.ChatroomID,
			Name: m.ChatroomName,
			LastMessage: models.LastMessage{
				Content: placeholderContent,
				Sender:  sender,
			},
		})
	}
	return chats
}
