package jobs

import (
	"context"
	"errors"
	"time"

	"postcraft/internal/config"
	"postcraft/internal/logging"
	"postcraft/internal/metrics"
	"postcraft/internal/model"
	"postcraft/internal/schedule"
	"postcraft/internal/store/contentdb"
)

const cursorKey = "publish:last_run"

// RunPublishOnce marks due scheduled posts published and advances recurring
// entries to their next occurrence. Quiet hours defer the whole run.
func RunPublishOnce(ctx context.Context, db *contentdb.DB, cfg config.PublishConfig, now time.Time) (int, error) {
	for _, q := range cfg.QuietHours {
		if now.UTC().Hour() == q {
			return 0, nil
		}
	}
	due, err := db.DueSchedules(ctx, now)
	if err != nil {
		return 0, err
	}
	published := 0
	for _, e := range due {
		post, err := db.GetPost(ctx, e.PostID)
		if errors.Is(err, contentdb.ErrNotFound) {
			_ = db.DeleteSchedule(ctx, e.PostID)
			continue
		}
		if err != nil {
			return published, err
		}
		post.Status = model.PostStatusPublished
		post.PublishedAt = now
		if err := db.UpdatePost(ctx, post); err != nil {
			return published, err
		}
		metrics.PublishedPosts.Inc()
		published++
		if e.Recurrence == "" {
			_ = db.DeleteSchedule(ctx, e.PostID)
			continue
		}
		next := schedule.NextOccurrence(schedule.Step(e.ScheduledAt, e.Recurrence), e.Recurrence, now)
		if !e.EndAt.IsZero() && next.After(e.EndAt) {
			_ = db.DeleteSchedule(ctx, e.PostID)
			continue
		}
		e.ScheduledAt = next
		if err := db.SaveSchedule(ctx, e); err != nil {
			return published, err
		}
	}
	_ = db.SaveCursor(ctx, cursorKey, now.Format(time.RFC3339Nano))
	if published > 0 {
		logging.Info("publish_once", map[string]any{"published": published, "now": now})
	}
	return published, nil
}

// RunPublishLoop runs RunPublishOnce on a ticker until ctx is cancelled.
func RunPublishLoop(ctx context.Context, db *contentdb.DB, cfg config.PublishConfig) error {
	interval := time.Duration(cfg.IntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	// run immediately
	_, _ = RunPublishOnce(ctx, db, cfg, time.Now().UTC())
	for {
		select {
		case <-ctx.Done():
			logging.Info("publish_loop_stop", nil)
			return ctx.Err()
		case <-t.C:
			if _, err := RunPublishOnce(ctx, db, cfg, time.Now().UTC()); err != nil {
				logging.Error("publish_once_error", map[string]any{"error": err.Error()})
			}
		}
	}
}
