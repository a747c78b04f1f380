package jobs

import (
	"context"
	"testing"
	"time"

	"postcraft/internal/config"
	"postcraft/internal/model"
	"postcraft/internal/store/contentdb"
)

func openTestDB(t *testing.T) *contentdb.DB {
	t.Helper()
	db, err := contentdb.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunPublishOnceOneShot(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	post, err := db.CreatePost(ctx, model.Post{Topic: "t", Platform: model.PlatformTwitter, Content: "c", Status: model.PostStatusScheduled})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.SaveSchedule(ctx, model.ScheduleEntry{PostID: post.ID, ScheduledAt: now.Add(-time.Minute)}); err != nil {
		t.Fatal(err)
	}
	n, err := RunPublishOnce(ctx, db, config.PublishConfig{}, now)
	if err != nil || n != 1 {
		t.Fatalf("expected one publish, got %d %v", n, err)
	}
	got, _ := db.GetPost(ctx, post.ID)
	if got.Status != model.PostStatusPublished || !got.PublishedAt.Equal(now) {
		t.Fatalf("post not published: %+v", got)
	}
	if left, _ := db.ListSchedules(ctx); len(left) != 0 {
		t.Fatalf("one-shot schedule should be removed, got %+v", left)
	}
}

func TestRunPublishOnceAdvancesRecurring(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	post, _ := db.CreatePost(ctx, model.Post{Topic: "t", Platform: model.PlatformTwitter, Content: "c", Status: model.PostStatusScheduled})
	anchor := now.Add(-30 * time.Minute)
	if err := db.SaveSchedule(ctx, model.ScheduleEntry{PostID: post.ID, ScheduledAt: anchor, Recurrence: model.RecurDaily}); err != nil {
		t.Fatal(err)
	}
	if _, err := RunPublishOnce(ctx, db, config.PublishConfig{}, now); err != nil {
		t.Fatal(err)
	}
	left, _ := db.ListSchedules(ctx)
	if len(left) != 1 {
		t.Fatalf("recurring schedule should remain, got %+v", left)
	}
	if want := anchor.AddDate(0, 0, 1); !left[0].ScheduledAt.Equal(want) {
		t.Fatalf("schedule should advance to %s, got %s", want, left[0].ScheduledAt)
	}
}

func TestRunPublishOnceRemovesEndedRecurrence(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	post, _ := db.CreatePost(ctx, model.Post{Topic: "t", Platform: model.PlatformTwitter, Content: "c", Status: model.PostStatusScheduled})
	err := db.SaveSchedule(ctx, model.ScheduleEntry{
		PostID:      post.ID,
		ScheduledAt: now.Add(-time.Minute),
		Recurrence:  model.RecurWeekly,
		EndAt:       now.Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := RunPublishOnce(ctx, db, config.PublishConfig{}, now); err != nil {
		t.Fatal(err)
	}
	if left, _ := db.ListSchedules(ctx); len(left) != 0 {
		t.Fatalf("ended recurrence should be removed, got %+v", left)
	}
}

func TestRunPublishOnceSkipsQuietHours(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC)
	post, _ := db.CreatePost(ctx, model.Post{Topic: "t", Platform: model.PlatformTwitter, Content: "c", Status: model.PostStatusScheduled})
	_ = db.SaveSchedule(ctx, model.ScheduleEntry{PostID: post.ID, ScheduledAt: now.Add(-time.Minute)})
	n, err := RunPublishOnce(ctx, db, config.PublishConfig{QuietHours: []int{3}}, now)
	if err != nil || n != 0 {
		t.Fatalf("quiet hour should defer publishing, got %d %v", n, err)
	}
}

func TestRunPublishOnceDropsOrphanSchedule(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()
	_ = db.SaveSchedule(ctx, model.ScheduleEntry{PostID: "ghost", ScheduledAt: now.Add(-time.Minute)})
	n, err := RunPublishOnce(ctx, db, config.PublishConfig{}, now)
	if err != nil || n != 0 {
		t.Fatalf("orphan schedule should publish nothing, got %d %v", n, err)
	}
	if left, _ := db.ListSchedules(ctx); len(left) != 0 {
		t.Fatalf("orphan schedule should be dropped, got %+v", left)
	}
}
