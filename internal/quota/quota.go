package quota

import (
	"context"
	"time"

	"postcraft/internal/config"
	"postcraft/internal/store/contentdb"
)

const actionType = "generate"

// Allow checks hourly/daily AI-generation budgets. Over-budget callers should
// still serve the request through the template fallback path.
func Allow(ctx context.Context, db *contentdb.DB, cfg config.QuotaConfig, now time.Time) (bool, error) {
	startHour := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, time.UTC)
	startDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	hourCount, err := db.CountActionsWithin(ctx, startHour, startHour.Add(time.Hour), actionType)
	if err != nil {
		return false, err
	}
	dayCount, err := db.CountActionsWithin(ctx, startDay, startDay.Add(24*time.Hour), actionType)
	if err != nil {
		return false, err
	}
	if cfg.MaxPerHour > 0 && hourCount >= cfg.MaxPerHour {
		return false, nil
	}
	if cfg.MaxPerDay > 0 && dayCount >= cfg.MaxPerDay {
		return false, nil
	}
	return true, nil
}

// Record logs one AI generation against the budget.
func Record(ctx context.Context, db *contentdb.DB, now time.Time) error {
	return db.PutAction(ctx, now, actionType)
}
