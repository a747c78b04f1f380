package quota

import (
	"context"
	"testing"
	"time"

	"postcraft/internal/config"
	"postcraft/internal/store/contentdb"
)

func TestAllowRespectsBudgets(t *testing.T) {
	db, err := contentdb.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	cfg := config.QuotaConfig{MaxPerHour: 2, MaxPerDay: 3}
	ok, err := Allow(ctx, db, cfg, now)
	if err != nil || !ok {
		t.Fatalf("expected allowed, got %v %v", ok, err)
	}
	_ = Record(ctx, db, now)
	_ = Record(ctx, db, now.Add(5*time.Minute))
	if ok, _ = Allow(ctx, db, cfg, now.Add(10*time.Minute)); ok {
		t.Fatalf("expected blocked by hourly budget")
	}
	_ = Record(ctx, db, now.Add(65*time.Minute))
	if ok, _ = Allow(ctx, db, cfg, now.Add(70*time.Minute)); ok {
		t.Fatalf("expected blocked by daily budget")
	}
}

func TestAllowUnlimitedWhenZero(t *testing.T) {
	db, err := contentdb.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	ctx := context.Background()
	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		_ = Record(ctx, db, now)
	}
	if ok, err := Allow(ctx, db, config.QuotaConfig{}, now); err != nil || !ok {
		t.Fatalf("zero limits mean unlimited, got %v %v", ok, err)
	}
}
