package analytics

import (
	"testing"
	"time"

	"postcraft/internal/model"
)

func publishedAt(h int) model.Post {
	return model.Post{
		Status:      model.PostStatusPublished,
		PublishedAt: time.Date(2024, 4, 1, h, 30, 0, 0, time.UTC),
	}
}

func TestHourlyPostCounts(t *testing.T) {
	posts := []model.Post{
		publishedAt(9), publishedAt(9), publishedAt(14),
		{Status: model.PostStatusDraft},
		{Status: model.PostStatusPublished}, // zero publish time is skipped
	}
	buckets := HourlyPostCounts(posts)
	if buckets[9] != 2 || buckets[14] != 1 || len(buckets) != 2 {
		t.Fatalf("unexpected buckets: %v", buckets)
	}
}

func TestBestHoursOrderingAndLimit(t *testing.T) {
	buckets := map[int]int{9: 2, 14: 1, 7: 2}
	best := BestHours(buckets, 2)
	if len(best) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(best))
	}
	if best[0].Hour != 7 || best[1].Hour != 9 {
		t.Fatalf("tie should break toward earlier hour: %+v", best)
	}
}
