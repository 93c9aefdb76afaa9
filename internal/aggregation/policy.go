package aggregation

import (
	"math/rand"
	"sort"
	"strings"

	"reviewdeck_backend/internal/widgetconfig"
)

// Filter applies the config's review policy: minimum rating, text presence
// and include/exclude substring matching (case-insensitive). The count cap
// is applied separately, after ordering.
func Filter(list []EffectiveReview, policy widgetconfig.Reviews) []EffectiveReview {
	out := make([]EffectiveReview, 0, len(list))
	for _, r := range list {
		if r.Rating < policy.MinRating {
			continue
		}
		if !policy.ShowEmpty && strings.TrimSpace(r.Text) == "" {
			continue
		}
		if len(policy.Include) > 0 && !matchesAny(r.Text, policy.Include) {
			continue
		}
		if matchesAny(r.Text, policy.Exclude) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Order sorts pinned reviews first, preserving their incoming (location
// concatenation) order, then the rest by the configured key. The default key
// is newest-first on source creation time.
func Order(list []EffectiveReview, key widgetconfig.SortKey) []EffectiveReview {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Pinned != b.Pinned {
			return a.Pinned
		}
		if a.Pinned {
			return false
		}
		switch key {
		case widgetconfig.SortOldest:
			return a.SourceCreatedAt.Before(b.SourceCreatedAt)
		case widgetconfig.SortHighest:
			return a.Rating > b.Rating
		case widgetconfig.SortLowest:
			return a.Rating < b.Rating
		case widgetconfig.SortRandom:
			return false
		default: // newest
			return a.SourceCreatedAt.After(b.SourceCreatedAt)
		}
	})
	if key == widgetconfig.SortRandom {
		shuffleUnpinned(list)
	}
	return list
}

// Cap truncates the ordered list; max of 0 means no cap.
func Cap(list []EffectiveReview, max int) []EffectiveReview {
	if max <= 0 || len(list) <= max {
		return list
	}
	return list[:max]
}

func matchesAny(text string, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, term := range terms {
		if term != "" && strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func shuffleUnpinned(list []EffectiveReview) {
	start := 0
	for start < len(list) && list[start].Pinned {
		start++
	}
	tail := list[start:]
	rand.Shuffle(len(tail), func(i, j int) {
		tail[i], tail[j] = tail[j], tail[i]
	})
}
