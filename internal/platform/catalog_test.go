package platform

import (
	"testing"

	"postcraft/internal/model"
)

func TestLookupUnknownDefaultsToTwitter(t *testing.T) {
	got := Lookup(model.Platform("bluesky"))
	want := Lookup(model.PlatformTwitter)
	if got.MaxCharacters != want.MaxCharacters || got.OptimalHashtags != want.OptimalHashtags {
		t.Fatalf("unknown platform should resolve to twitter limits, got %+v", got)
	}
	if got.MaxCharacters != 280 {
		t.Fatalf("twitter max characters expected 280, got %d", got.MaxCharacters)
	}
}

func TestProfilesAreSane(t *testing.T) {
	for _, p := range All() {
		if p.MaxCharacters <= 0 {
			t.Fatalf("%s: non-positive max characters", p.ID)
		}
		if p.OptimalHashtags > p.MaxHashtags {
			t.Fatalf("%s: optimal hashtags %d exceeds max %d", p.ID, p.OptimalHashtags, p.MaxHashtags)
		}
		if len(p.CTAPool) == 0 {
			t.Fatalf("%s: empty CTA pool", p.ID)
		}
		if p.BestPostTime == "" || p.HashtagStrategy == "" {
			t.Fatalf("%s: missing advisory text", p.ID)
		}
	}
}

func TestInstagramOptimalHashtags(t *testing.T) {
	if got := Lookup(model.PlatformInstagram).OptimalHashtags; got != 11 {
		t.Fatalf("instagram optimal hashtags expected 11, got %d", got)
	}
}
