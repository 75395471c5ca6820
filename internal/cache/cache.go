package cache

import (
	"context"
	"strings"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// CareerKey is the key of one career record. Titles match exactly, so the
// key keeps their case.
func CareerKey(title string) string {
	return "career:title:" + strings.TrimSpace(title)
}

// CareerTitlesKey holds the list of every title in the catalog.
const CareerTitlesKey = "career:titles"
