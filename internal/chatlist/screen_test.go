package chatlist

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniyar/chatlist/internal/models"
)

type fakeStore struct {
	mu          sync.Mutex
	memberships []models.Membership
	err         error
	calls       int
}

func (f *fakeStore) MembershipsForUser(ctx context.Context, userID string) ([]models.Membership, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.memberships, nil
}

type fakeImages struct {
	urls []string
	err  error
}

func (f *fakeImages) Batch(ctx context.Context, topic string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.urls, nil
}

func memberships(names ...string) []models.Membership {
	var ms []models.Membership
	for _, n := range names {
		ms = append(ms, models.Membership{ChatroomID: "id-" + n, ChatroomName: n})
	}
	return ms
}

func TestLoadKeepsStoreOrder(t *testing.T) {
	store := &fakeStore{memberships: memberships("alpha", "beta", "gamma")}
	screen := NewScreen(store, &fakeImages{urls: []string{"img-0"}})

	screen.Load(context.Background(), "user-1")

	snap := screen.Snapshot()
	assert.False(t, snap.Loading)
	require.Len(t, snap.Chats, 3)
	assert.Equal(t, "id-alpha", snap.Chats[0].ID)
	assert.Equal(t, "id-beta", snap.Chats[1].ID)
	assert.Equal(t, "id-gamma", snap.Chats[2].ID)
	assert.Equal(t, "beta", snap.Chats[1].Name)
}

func TestLoadAssignsAvatarsCyclically(t *testing.T) {
	store := &fakeStore{memberships: memberships("a", "b", "c", "d", "e")}
	screen := NewScreen(store, &fakeImages{urls: []string{"img-0", "img-1"}})

	screen.Load(context.Background(), "user-1")

	snap := screen.Snapshot()
	require.Len(t, snap.Chats, 5)
	want := []string{"img-0", "img-1", "img-0", "img-1", "img-0"}
	for i, c := range snap.Chats {
		assert.Equal(t, want[i], c.LastMessage.Sender.AvatarURL, "row %d", i)
	}
}

func TestLoadEmptyImageBatchLeavesAvatarsUnset(t *testing.T) {
	store := &fakeStore{memberships: memberships("a", "b")}
	screen := NewScreen(store, &fakeImages{urls: nil})

	screen.Load(context.Background(), "user-1")

	snap := screen.Snapshot()
	require.Len(t, snap.Chats, 2)
	for _, c := range snap.Chats {
		assert.Empty(t, c.LastMessage.Sender.AvatarURL)
		assert.Equal(t, "No messages yet", c.LastMessage.Content)
		assert.Equal(t, "Unknown", c.LastMessage.Sender.Username)
		assert.Empty(t, c.LastMessage.CreatedAt)
	}
}

func TestLoadNoMembershipsRendersEmptyList(t *testing.T) {
	store := &fakeStore{memberships: nil}
	screen := NewScreen(store, &fakeImages{urls: []string{"img-0"}})

	screen.Load(context.Background(), "user-1")

	snap := screen.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Chats)
}

func TestLoadWithoutUserSkipsQueries(t *testing.T) {
	store := &fakeStore{memberships: memberships("a")}
	screen := NewScreen(store, &fakeImages{urls: []string{"img-0"}})

	screen.Load(context.Background(), "")

	snap := screen.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Chats)
	assert.Equal(t, 0, store.calls)
}

func TestLoadStoreErrorEndsLoadingAndClearsList(t *testing.T) {
	store := &fakeStore{memberships: memberships("a")}
	screen := NewScreen(store, &fakeImages{urls: []string{"img-0"}})
	screen.Load(context.Background(), "user-1")
	require.Len(t, screen.Snapshot().Chats, 1)

	store.err = errors.New("connection refused")
	screen.Load(context.Background(), "user-1")

	snap := screen.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Chats)
}

func TestLoadImageErrorEndsLoadingAndClearsList(t *testing.T) {
	store := &fakeStore{memberships: memberships("a")}
	screen := NewScreen(store, &fakeImages{err: errors.New("rate limited")})

	screen.Load(context.Background(), "user-1")

	snap := screen.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Chats)
}

// gatedStore blocks its first call until released, so a test can force two
// Loads to overlap deterministically.
type gatedStore struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
	first   []models.Membership
	second  []models.Membership
}

func (g *gatedStore) MembershipsForUser(ctx context.Context, userID string) ([]models.Membership, error) {
	g.mu.Lock()
	g.calls++
	n := g.calls
	g.mu.Unlock()
	if n == 1 {
		close(g.started)
		<-g.release
		return g.first, nil
	}
	return g.second, nil
}

func TestLoadDiscardsStaleResponse(t *testing.T) {
	store := &gatedStore{
		started: make(chan struct{}),
		release: make(chan struct{}),
		first:   memberships("stale"),
		second:  memberships("fresh"),
	}
	screen := NewScreen(store, &fakeImages{urls: []string{"img-0"}})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		screen.Load(context.Background(), "user-1")
	}()
	<-store.started

	// A newer trigger fires while the first fetch is still in flight.
	screen.Load(context.Background(), "user-1")
	close(store.release)
	wg.Wait()

	snap := screen.Snapshot()
	assert.False(t, snap.Loading)
	require.Len(t, snap.Chats, 1)
	assert.Equal(t, "id-fresh", snap.Chats[0].ID, "stale fetch must not overwrite the newer result")
}
