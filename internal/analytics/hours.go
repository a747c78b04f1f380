package analytics

import (
	"sort"

	"postcraft/internal/model"
)

// HourlyPostCounts aggregates published posts into hour-of-day (UTC) buckets.
func HourlyPostCounts(posts []model.Post) map[int]int {
	buckets := make(map[int]int)
	for _, p := range posts {
		if p.Status != model.PostStatusPublished || p.PublishedAt.IsZero() {
			continue
		}
		buckets[p.PublishedAt.UTC().Hour()]++
	}
	return buckets
}

// HourCount is one bucket of the posting-hour histogram.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// BestHours returns up to n hours ordered by post volume, ties broken by
// earlier hour.
func BestHours(buckets map[int]int, n int) []HourCount {
	out := make([]HourCount, 0, len(buckets))
	for h, c := range buckets {
		out = append(out, HourCount{Hour: h, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Hour < out[j].Hour
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
