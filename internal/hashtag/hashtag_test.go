package hashtag

import (
	"reflect"
	"testing"

	"postcraft/internal/model"
	"postcraft/internal/platform"
)

func TestSuggestTopicTagFirstAndBounded(t *testing.T) {
	got := Suggest("Remote Work", model.PlatformInstagram, "business")
	if len(got) == 0 || got[0] != "#RemoteWork" {
		t.Fatalf("topic tag must come first, got %v", got)
	}
	if limit := platform.Lookup(model.PlatformInstagram).OptimalHashtags; len(got) > limit {
		t.Fatalf("expected at most %d hashtags, got %d", limit, len(got))
	}
}

func TestSuggestDeterministic(t *testing.T) {
	a := Suggest("Morning Coffee", model.PlatformTikTok, "food")
	b := Suggest("Morning Coffee", model.PlatformTikTok, "food")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("suggest is not deterministic: %v vs %v", a, b)
	}
}

func TestSuggestUnknownCategoryContributesNothing(t *testing.T) {
	with := Suggest("Go", model.PlatformTwitter, "astrology")
	without := Suggest("Go", model.PlatformTwitter, "")
	if !reflect.DeepEqual(with, without) {
		t.Fatalf("unknown category changed output: %v vs %v", with, without)
	}
}

func TestSuggestDeduplicates(t *testing.T) {
	// Topic collides with a tiktok pool tag; it must appear once, first.
	got := Suggest("Viral", model.PlatformTikTok, "")
	seen := map[string]int{}
	for _, tag := range got {
		seen[tag]++
		if seen[tag] > 1 {
			t.Fatalf("duplicate tag %s in %v", tag, got)
		}
	}
	if got[0] != "#Viral" {
		t.Fatalf("expected #Viral first, got %v", got)
	}
}

func TestSuggestUnknownPlatformUsesDefaultLimits(t *testing.T) {
	got := Suggest("Launch Day", model.Platform("bluesky"), "")
	if limit := platform.Lookup(model.PlatformTwitter).OptimalHashtags; len(got) > limit {
		t.Fatalf("unknown platform should inherit twitter bound %d, got %d tags", limit, len(got))
	}
}
