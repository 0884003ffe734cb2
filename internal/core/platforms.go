package core

import (
	"fmt"
	"strings"
)

// Platform is one entry in the fixed social-platform table.
type Platform struct {
	Key         string
	URLTemplate string
}

// ProfileURL renders the public profile URL for a username.
func (p Platform) ProfileURL(username string) string {
	return fmt.Sprintf(p.URLTemplate, username)
}

// platforms is the fixed, ordered table of supported platforms. Iteration
// order is part of the observable contract, so this stays a slice.
var platforms = []Platform{
	{Key: "github", URLTemplate: "https://github.com/%s"},
	{Key: "twitter", URLTemplate: "https://twitter.com/%s"},
	{Key: "instagram", URLTemplate: "https://instagram.com/%s"},
	{Key: "facebook", URLTemplate: "https://facebook.com/%s"},
	{Key: "youtube", URLTemplate: "https://youtube.com/@%s"},
	{Key: "tiktok", URLTemplate: "https://tiktok.com/@%s"},
	{Key: "pinterest", URLTemplate: "https://pinterest.com/%s"},
	{Key: "linkedin", URLTemplate: "https://linkedin.com/in/%s"},
	{Key: "reddit", URLTemplate: "https://reddit.com/user/%s"},
	{Key: "threads", URLTemplate: "https://threads.net/@%s"},
}

// Platforms returns the supported platforms in stable table order.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// PlatformKeys returns the supported platform keys in stable table order.
func PlatformKeys() []string {
	keys := make([]string, 0, len(platforms))
	for _, p := range platforms {
		keys = append(keys, p.Key)
	}
	return keys
}

// FindPlatform resolves a platform key, case-insensitively.
func FindPlatform(key string) (Platform, bool) {
	normalized := strings.ToLower(strings.TrimSpace(key))
	for _, p := range platforms {
		if p.Key == normalized {
			return p, true
		}
	}
	return Platform{}, false
}
