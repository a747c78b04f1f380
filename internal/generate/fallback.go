package generate

import (
	"strings"

	"postcraft/internal/hashtag"
	"postcraft/internal/model"
)

// Template content used when the text collaborator is unavailable. Three
// templates per tone with {topic} and {audience} substitution points.
// Inspirational has no set of its own and deliberately borrows professional.
var toneTemplates = map[model.Tone][]string{
	model.ToneProfessional: {
		"Exploring {topic} today: three things every {audience} should know before diving in.",
		"The landscape of {topic} keeps shifting. Here is what matters right now for {audience}.",
		"A practical look at {topic}: what works, what does not, and where {audience} should focus next.",
	},
	model.ToneCasual: {
		"Been thinking a lot about {topic} lately... honestly a game changer for {audience}.",
		"Okay, can we talk about {topic}? Because {audience} are sleeping on this.",
		"Just went deep on {topic} this weekend and wow. {audience}, you need to see this.",
	},
	model.ToneHumorous: {
		"Me: I will just look at {topic} for five minutes. Also me, three hours later: so anyway, {audience}...",
		"Nobody: ... Absolutely nobody: ... Me: let me tell {audience} everything about {topic}.",
		"They said {topic} could not get any funnier. They clearly never watched {audience} try it.",
	},
}

// fallbackTagPool is the fixed 7-entry hashtag pool for template content; the
// topic-derived tag is always first.
func fallbackTagPool(topic string) []string {
	return []string{
		hashtag.TopicTag(topic),
		"#ContentCreation",
		"#SocialMedia",
		"#Marketing",
		"#Growth",
		"#CreatorTips",
		"#Engagement",
	}
}

// FallbackResult is template-generated content plus its hashtags.
type FallbackResult struct {
	Content  string
	Hashtags []string
}

// Fallback produces tone-specific template content. When includeHashtags is
// set, 2-5 tags from the fixed pool are appended space-joined.
func Fallback(topic string, tone model.Tone, audience string, includeHashtags bool, pick Picker) FallbackResult {
	tpls, ok := toneTemplates[tone]
	if !ok {
		tpls = toneTemplates[model.ToneProfessional]
	}
	if audience == "" {
		audience = "everyone"
	}
	content := strings.NewReplacer("{topic}", topic, "{audience}", audience).Replace(pickOne(pick, tpls))
	var tags []string
	if includeHashtags {
		pool := fallbackTagPool(topic)
		n := 2 + pick(4)
		tags = append(tags, pool[:n]...)
		content += " " + strings.Join(tags, " ")
	}
	return FallbackResult{Content: content, Hashtags: tags}
}
