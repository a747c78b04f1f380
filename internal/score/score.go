package score

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"postcraft/internal/model"
	"postcraft/internal/platform"
	"postcraft/internal/util"
)

// Additive bonuses over a base of 50, clamped to [0,100]. Order-independent:
// every signal is checked against the raw content, none consumes the text.
const (
	baseScore      = 50
	lengthBonus    = 10
	questionBonus  = 5
	exclaimBonus   = 5
	emojiBonus     = 10
	hashtagBonus   = 8
	valueWordBonus = 12
	urgencyBonus   = 8
)

// highAffinityEmoji is the fixed glyph set that historically correlates with
// elevated engagement across platforms.
var highAffinityEmoji = []string{"🔥", "🚀", "💡", "✨", "🎯", "💪", "😂", "❤️", "🤯", "👀"}

var (
	// 1-3 consecutive exclamation marks; runs of 4+ read as spam and earn nothing.
	exclaimRun   = regexp.MustCompile(`(^|[^!])!{1,3}([^!]|$)`)
	valueWords   = regexp.MustCompile(`(?i)\b(tips?|secrets?|hacks?|tricks?)\b`)
	urgencyWords = regexp.MustCompile(`(?i)\b(new|breaking|exclusive|first)\b`)
)

// Score rates content for a platform on a 0-100 scale. Pure and reproducible:
// identical input always yields the identical score.
func Score(content string, id model.Platform) int {
	prof := platform.Lookup(id)
	s := baseScore
	if utf8.RuneCountInString(content) <= prof.MaxCharacters {
		s += lengthBonus
	}
	if strings.Contains(content, "?") {
		s += questionBonus
	}
	if exclaimRun.MatchString(content) {
		s += exclaimBonus
	}
	if util.ContainsAny(content, highAffinityEmoji) {
		s += emojiBonus
	}
	if strings.Contains(content, "#") {
		s += hashtagBonus
	}
	if valueWords.MatchString(content) {
		s += valueWordBonus
	}
	if urgencyWords.MatchString(content) {
		s += urgencyBonus
	}
	return clamp(s, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
