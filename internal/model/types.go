package model

import "time"

// Platform identifies a target social platform.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTikTok    Platform = "tiktok"
)

// Platforms lists the known platforms in a stable order.
func Platforms() []Platform {
	return []Platform{PlatformTwitter, PlatformLinkedIn, PlatformInstagram, PlatformFacebook, PlatformTikTok}
}

// Tone identifies a content voice.
type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneHumorous      Tone = "humorous"
	ToneInspirational Tone = "inspirational"
)

// GenerationRequest is one content-generation call. Topic must be non-empty;
// everything else degrades to safe defaults.
type GenerationRequest struct {
	Topic           string   `json:"topic"`
	Platform        Platform `json:"platform"`
	Tone            Tone     `json:"tone"`
	TargetAudience  string   `json:"target_audience,omitempty"`
	IncludeHashtags bool     `json:"include_hashtags"`
}

// EngagementPrediction estimates interaction counts derived from the viral score.
type EngagementPrediction struct {
	Likes    int `json:"likes"`
	Retweets int `json:"retweets"`
	Comments int `json:"comments"`
}

// Recommendations carries posting advice attached to generated content.
type Recommendations struct {
	BestPostTime  string               `json:"best_post_time"`
	ExpectedReach int                  `json:"expected_reach"`
	Engagement    EngagementPrediction `json:"engagement_prediction"`
}

// GeneratedContent is the result of one generation run.
type GeneratedContent struct {
	Content         string          `json:"content"`
	ViralScore      int             `json:"viral_score"`
	Hashtags        []string        `json:"hashtags"`
	Platform        Platform        `json:"platform"`
	Recommendations Recommendations `json:"recommendations"`
	// Fallback is true when the text collaborator was unavailable and the
	// template path produced the content.
	Fallback bool `json:"fallback"`
}

// Post statuses in the content library.
const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)

// Post is a stored content-library entry.
type Post struct {
	ID          string    `json:"id"`
	Topic       string    `json:"topic"`
	Platform    Platform  `json:"platform"`
	Tone        Tone      `json:"tone"`
	Content     string    `json:"content"`
	ViralScore  int       `json:"viral_score"`
	Hashtags    []string  `json:"hashtags"`
	Status      string    `json:"status"`
	PublishedAt time.Time `json:"published_at,omitzero"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Recurrence is a schedule repetition period.
type Recurrence string

const (
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
)

// ScheduleEntry is a stored scheduled posting of a library post. Recurrence
// empty means one-shot; EndAt zero means no end.
type ScheduleEntry struct {
	PostID      string     `json:"post_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Recurrence  Recurrence `json:"recurrence,omitempty"`
	EndAt       time.Time  `json:"end_at,omitzero"`
}
