package recommend

import (
	"strings"
	"testing"

	"postcraft/internal/model"
)

func TestRankPlatformsPrefersLengthFit(t *testing.T) {
	// 200 chars: fits twitter (280) but not tiktok captions (150).
	content := strings.Repeat("a", 200)
	fits := RankPlatforms(content)
	if len(fits) != len(model.Platforms()) {
		t.Fatalf("expected a fit per platform, got %d", len(fits))
	}
	pos := map[model.Platform]int{}
	for i, f := range fits {
		pos[f.Platform] = i
		if f.ViralScore < 0 || f.ViralScore > 100 {
			t.Fatalf("score out of bounds for %s: %d", f.Platform, f.ViralScore)
		}
	}
	if pos[model.PlatformTikTok] < pos[model.PlatformTwitter] {
		t.Fatalf("tiktok should rank below twitter for over-length captions: %+v", fits)
	}
}

func TestRankPlatformsDeterministic(t *testing.T) {
	a := RankPlatforms("New tips? #go")
	b := RankPlatforms("New tips? #go")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("ranking not deterministic at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
