package recommend

import (
	"sort"
	"unicode/utf8"

	"postcraft/internal/model"
	"postcraft/internal/platform"
	"postcraft/internal/score"
)

// PlatformFit bundles a platform with how well one piece of content suits it.
type PlatformFit struct {
	Platform   model.Platform `json:"platform"`
	ViralScore int            `json:"viral_score"`
	FitsLength bool           `json:"fits_length"`
	FinalScore float64        `json:"final_score"`
}

// RankPlatforms scores content against every platform profile and returns
// platforms ordered by fit. Length fit dominates: content that cannot be
// posted as-is ranks below anything that can.
func RankPlatforms(content string) []PlatformFit {
	runes := utf8.RuneCountInString(content)
	fits := make([]PlatformFit, 0, len(model.Platforms()))
	for _, id := range model.Platforms() {
		prof := platform.Lookup(id)
		sc := score.Score(content, id)
		fitsLen := runes <= prof.MaxCharacters
		final := float64(sc) / 100 * 0.6
		if fitsLen {
			final += 0.4
		}
		fits = append(fits, PlatformFit{Platform: id, ViralScore: sc, FitsLength: fitsLen, FinalScore: final})
	}
	sort.SliceStable(fits, func(i, j int) bool { return fits[i].FinalScore > fits[j].FinalScore })
	return fits
}
