package platform

import "postcraft/internal/model"

// Profile is the immutable constraint and advisory record for one platform.
type Profile struct {
	ID              model.Platform `json:"id"`
	MaxCharacters   int            `json:"max_characters"`
	MaxHashtags     int            `json:"max_hashtags"`
	OptimalHashtags int            `json:"optimal_hashtags"`
	SupportsVideo   bool           `json:"supports_video"`
	SupportsImages  bool           `json:"supports_images"`
	SupportsLinks   bool           `json:"supports_links"`
	HashtagStrategy string         `json:"hashtag_strategy"`
	BestPostTime    string         `json:"best_post_time"`
	CTAPool         []string       `json:"cta_pool"`
	VisualTips      []string       `json:"visual_suggestions"`
	ContentTips     []string       `json:"content_tips"`
}

// The table is read-only after init; safe for concurrent lookups.
var profiles = map[model.Platform]Profile{
	model.PlatformTwitter: {
		ID:              model.PlatformTwitter,
		MaxCharacters:   280,
		MaxHashtags:     5,
		OptimalHashtags: 2,
		SupportsVideo:   true,
		SupportsImages:  true,
		SupportsLinks:   true,
		HashtagStrategy: "Use 1-2 targeted hashtags; more dilutes engagement on Twitter.",
		BestPostTime:    "9:00-11:00 AM and 7:00-9:00 PM on weekdays",
		CTAPool: []string{
			"Retweet if you agree!",
			"What's your take? Reply below.",
			"Follow for more insights like this.",
			"Share this with someone who needs it.",
		},
		VisualTips: []string{
			"Attach a single bold image or short clip",
			"Use text overlays sparingly",
		},
		ContentTips: []string{
			"Lead with the hook in the first 50 characters",
			"Threads outperform single long tweets",
			"Questions drive replies",
		},
	},
	model.PlatformLinkedIn: {
		ID:              model.PlatformLinkedIn,
		MaxCharacters:   3000,
		MaxHashtags:     15,
		OptimalHashtags: 5,
		SupportsVideo:   true,
		SupportsImages:  true,
		SupportsLinks:   true,
		HashtagStrategy: "Mix 3-5 niche and broad professional hashtags at the end of the post.",
		BestPostTime:    "8:00-10:00 AM Tuesday through Thursday",
		CTAPool: []string{
			"What has your experience been? Share in the comments.",
			"Repost to help your network.",
			"Follow me for more on this topic.",
			"Agree or disagree? Let's discuss.",
		},
		VisualTips: []string{
			"Document carousels earn the most dwell time",
			"Native video over external links",
		},
		ContentTips: []string{
			"Open with a one-line hook, then white space",
			"Personal stories outperform company updates",
			"End with a question to invite comments",
		},
	},
	model.PlatformInstagram: {
		ID:              model.PlatformInstagram,
		MaxCharacters:   2200,
		MaxHashtags:     30,
		OptimalHashtags: 11,
		SupportsVideo:   true,
		SupportsImages:  true,
		SupportsLinks:   false,
		HashtagStrategy: "Use around 11 hashtags mixing niche, medium, and broad reach tags.",
		BestPostTime:    "11:00 AM-1:00 PM and 7:00-9:00 PM",
		CTAPool: []string{
			"Double tap if this resonates!",
			"Save this for later.",
			"Tag a friend who should see this.",
			"Link in bio for more.",
		},
		VisualTips: []string{
			"Reels reach beyond your followers",
			"Consistent color grading builds brand recall",
			"First slide must stand alone",
		},
		ContentTips: []string{
			"Front-load keywords before the fold",
			"Carousels drive saves, Reels drive reach",
		},
	},
	model.PlatformFacebook: {
		ID:              model.PlatformFacebook,
		MaxCharacters:   63206,
		MaxHashtags:     10,
		OptimalHashtags: 3,
		SupportsVideo:   true,
		SupportsImages:  true,
		SupportsLinks:   true,
		HashtagStrategy: "Keep to 2-3 hashtags; Facebook audiences respond poorly to hashtag walls.",
		BestPostTime:    "1:00-4:00 PM on weekdays",
		CTAPool: []string{
			"Like and share if you found this useful!",
			"Tell us what you think in the comments.",
			"Share this with your group.",
			"Follow our page for daily tips.",
		},
		VisualTips: []string{
			"Square images render best in feed",
			"Captions on video; most plays are muted",
		},
		ContentTips: []string{
			"Short posts with a link preview outperform long essays",
			"Ask for opinions to trigger the discussion ranking boost",
		},
	},
	model.PlatformTikTok: {
		ID:              model.PlatformTikTok,
		MaxCharacters:   150,
		MaxHashtags:     20,
		OptimalHashtags: 5,
		SupportsVideo:   true,
		SupportsImages:  false,
		SupportsLinks:   false,
		HashtagStrategy: "Blend 1-2 trending hashtags with 3-4 niche tags in the caption.",
		BestPostTime:    "6:00-9:00 PM and 12:00-3:00 PM",
		CTAPool: []string{
			"Follow for part two!",
			"Comment your thoughts below!",
			"Duet this with your take.",
			"Share this with someone who gets it.",
		},
		VisualTips: []string{
			"Hook within the first second",
			"On-screen text drives completion rate",
			"Trending audio boosts distribution",
		},
		ContentTips: []string{
			"Keep captions short; the video carries the message",
			"Loop-friendly endings raise watch time",
		},
	},
}

// Lookup returns the profile for a platform. Unknown ids resolve to the
// twitter profile so downstream components always have limits to work with.
func Lookup(id model.Platform) Profile {
	if p, ok := profiles[id]; ok {
		return p
	}
	return profiles[model.PlatformTwitter]
}

// All returns profiles for every known platform in stable order.
func All() []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, id := range model.Platforms() {
		out = append(out, profiles[id])
	}
	return out
}
