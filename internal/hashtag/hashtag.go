package hashtag

import (
	"strings"

	"postcraft/internal/model"
	"postcraft/internal/platform"
	"postcraft/internal/util"
)

// Generic per-platform pools. Ordering matters: earlier tags survive
// truncation to the platform's optimal count.
var platformPools = map[model.Platform][]string{
	model.PlatformTwitter:   {"#Trending", "#Viral", "#Thread", "#Tech", "#Growth"},
	model.PlatformLinkedIn:  {"#Leadership", "#CareerGrowth", "#Networking", "#ProfessionalDevelopment", "#Industry", "#Innovation"},
	model.PlatformInstagram: {"#InstaDaily", "#PhotoOfTheDay", "#Explore", "#Reels", "#Inspiration", "#Lifestyle", "#Community"},
	model.PlatformFacebook:  {"#Community", "#Share", "#Local", "#Family", "#Events"},
	model.PlatformTikTok:    {"#FYP", "#ForYou", "#Viral", "#Trending", "#LearnOnTikTok", "#Creator"},
}

var categoryPools = map[string][]string{
	"business":  {"#Business", "#Entrepreneur", "#Startup", "#Success", "#Hustle"},
	"tech":      {"#Technology", "#AI", "#Innovation", "#Coding", "#Future"},
	"lifestyle": {"#Wellness", "#SelfCare", "#DailyLife", "#Balance", "#Mindfulness"},
	"food":      {"#Foodie", "#Recipe", "#Cooking", "#FoodLover", "#Homemade"},
	"fitness":   {"#Fitness", "#Workout", "#Health", "#Training", "#FitLife"},
}

// Suggest derives a bounded hashtag set for a topic on a platform. The
// topic-derived tag always comes first; unknown categories contribute
// nothing. Deterministic: same arguments, same result.
func Suggest(topic string, id model.Platform, category string) []string {
	prof := platform.Lookup(id)
	tags := make([]string, 0, 1+len(platformPools[id])+5)
	if base := TopicTag(topic); base != "#" {
		tags = append(tags, base)
	}
	tags = append(tags, platformPools[prof.ID]...)
	if category != "" {
		tags = append(tags, categoryPools[strings.ToLower(category)]...)
	}
	tags = dedupe(tags)
	if len(tags) > prof.OptimalHashtags {
		tags = tags[:prof.OptimalHashtags]
	}
	return tags
}

// TopicTag builds the base hashtag from a topic by stripping whitespace.
func TopicTag(topic string) string {
	return "#" + util.StripWhitespace(topic)
}

func dedupe(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := tags[:0]
	for _, t := range tags {
		k := strings.ToLower(t)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}
