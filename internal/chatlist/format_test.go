package chatlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"garbage", "not-a-date", ""},
		{"partial date", "2024-01-05", ""},
		{"afternoon", "2024-01-05T15:45:00Z", "Jan 5, 3:45 pm"},
		{"morning", "2024-11-30T09:05:00Z", "Nov 30, 9:05 am"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.in))
		})
	}
}

func TestFormatTimestampContainsMonthAndDay(t *testing.T) {
	got := FormatTimestamp("2024-01-05T15:45:00Z")
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "Jan")
	assert.Contains(t, got, "5")
}

func TestTruncatePreview(t *testing.T) {
	assert.Equal(t, "short", TruncatePreview("short", 10))
	assert.Equal(t, "one line now", TruncatePreview("one\nline\nnow", 20))
	assert.Equal(t, "abcde…", TruncatePreview("abcdefghij", 5))

	long := strings.Repeat("日本語 ", 40)
	got := TruncatePreview(long, 10)
	assert.Equal(t, 11, len([]rune(got)), "rune-safe cut plus ellipsis")
}

func TestPlaceholderAvatarURL(t *testing.T) {
	got := PlaceholderAvatarURL("Ann Lee")
	assert.Contains(t, got, "ui-avatars.com")
	assert.Contains(t, got, "Ann+Lee")
}
