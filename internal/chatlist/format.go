package chatlist

import (
	"net/url"
	"strings"
	"time"
)

// FormatTimestamp renders an RFC 3339 timestamp as a short label like
// "Jan 5, 3:45 pm". Empty or unparseable input yields "".
func FormatTimestamp(ts string) string {
	if ts == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2, 3:04 pm")
}

// TruncatePreview collapses s onto a single line and cuts it to at most
// max runes, appending an ellipsis when something was dropped.
func TruncatePreview(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

// PlaceholderAvatarURL is the fallback when no decorative image was
// assigned: a generated initials avatar keyed by username.
func PlaceholderAvatarURL(username string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(username)
}
