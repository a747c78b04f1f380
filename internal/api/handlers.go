package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"postcraft/internal/analytics"
	"postcraft/internal/generate"
	"postcraft/internal/hashtag"
	"postcraft/internal/logging"
	"postcraft/internal/model"
	"postcraft/internal/platform"
	"postcraft/internal/quota"
	"postcraft/internal/recommend"
	"postcraft/internal/schedule"
	"postcraft/internal/score"
	"postcraft/internal/store/contentdb"
)

// generateContent runs the content pipeline. Collaborator failure never
// produces an error status; only a malformed request does.
func (s *Server) generateContent(c *gin.Context) {
	var req model.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid data"})
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		c.JSON(400, gin.H{"error": "topic is required"})
		return
	}
	ctx := c.Request.Context()
	now := time.Now().UTC()
	useAI := true
	if s.DB != nil {
		allowed, err := quota.Allow(ctx, s.DB, s.Quota, now)
		if err != nil {
			logging.Error("quota_check_error", map[string]any{"error": err.Error()})
		}
		useAI = err == nil && allowed
	}
	var out model.GeneratedContent
	var err error
	if useAI {
		out, err = s.Gen.Generate(ctx, req)
		if err == nil && s.DB != nil {
			_ = quota.Record(ctx, s.DB, now)
		}
	} else {
		out, err = s.Gen.GenerateOffline(ctx, req)
	}
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, out)
}

func (s *Server) rankContent(c *gin.Context) {
	text := c.Query("text")
	if strings.TrimSpace(text) == "" {
		c.JSON(400, gin.H{"error": "text is required"})
		return
	}
	c.JSON(200, gin.H{"platforms": recommend.RankPlatforms(text)})
}

func (s *Server) listPlatforms(c *gin.Context) {
	c.JSON(200, gin.H{"platforms": platform.All()})
}

// getPlatform exposes the profile record read-only for the UI validation
// panel. Unknown ids resolve to the default profile, not an error.
func (s *Server) getPlatform(c *gin.Context) {
	c.JSON(200, platform.Lookup(model.Platform(c.Param("id"))))
}

func (s *Server) platformCTA(c *gin.Context) {
	id := model.Platform(c.Param("id"))
	cta := generate.SuggestCTA(id, c.Query("topic"), generate.RandomPicker())
	c.JSON(200, gin.H{"platform": platform.Lookup(id).ID, "cta": cta})
}

func (s *Server) suggestHashtags(c *gin.Context) {
	topic := c.Query("topic")
	if strings.TrimSpace(topic) == "" {
		c.JSON(400, gin.H{"error": "topic is required"})
		return
	}
	tags := hashtag.Suggest(topic, model.Platform(c.Query("platform")), c.Query("category"))
	c.JSON(200, gin.H{"hashtags": tags})
}

type postInput struct {
	Topic    string         `json:"topic"`
	Platform model.Platform `json:"platform"`
	Tone     model.Tone     `json:"tone"`
	Content  string         `json:"content"`
	Hashtags []string       `json:"hashtags"`
	Status   string         `json:"status"`
}

func (s *Server) createPost(c *gin.Context) {
	var in postInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "invalid data"})
		return
	}
	if strings.TrimSpace(in.Content) == "" {
		c.JSON(400, gin.H{"error": "content is required"})
		return
	}
	p := model.Post{
		Topic:      in.Topic,
		Platform:   in.Platform,
		Tone:       in.Tone,
		Content:    in.Content,
		Hashtags:   in.Hashtags,
		Status:     in.Status,
		ViralScore: score.Score(in.Content, in.Platform),
	}
	created, err := s.DB.CreatePost(c.Request.Context(), p)
	if err != nil {
		logging.Error("create_post_error", map[string]any{"error": err.Error()})
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, created)
}

func (s *Server) listPosts(c *gin.Context) {
	posts, err := s.DB.ListPosts(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"posts": posts})
}

func (s *Server) getPost(c *gin.Context) {
	p, err := s.DB.GetPost(c.Request.Context(), c.Param("id"))
	if errors.Is(err, contentdb.ErrNotFound) {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, p)
}

func (s *Server) updatePost(c *gin.Context) {
	var in postInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "invalid data"})
		return
	}
	ctx := c.Request.Context()
	p, err := s.DB.GetPost(ctx, c.Param("id"))
	if errors.Is(err, contentdb.ErrNotFound) {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	if in.Topic != "" {
		p.Topic = in.Topic
	}
	if in.Platform != "" {
		p.Platform = in.Platform
	}
	if in.Tone != "" {
		p.Tone = in.Tone
	}
	if in.Content != "" {
		p.Content = in.Content
	}
	if in.Hashtags != nil {
		p.Hashtags = in.Hashtags
	}
	if in.Status != "" {
		p.Status = in.Status
	}
	p.ViralScore = score.Score(p.Content, p.Platform)
	if err := s.DB.UpdatePost(ctx, p); err != nil {
		logging.Error("update_post_error", map[string]any{"error": err.Error()})
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, p)
}

func (s *Server) deletePost(c *gin.Context) {
	err := s.DB.DeletePost(c.Request.Context(), c.Param("id"))
	if errors.Is(err, contentdb.ErrNotFound) {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"status": "deleted"})
}

type scheduleInput struct {
	ScheduledAt time.Time        `json:"scheduled_at"`
	Recurrence  model.Recurrence `json:"recurrence"`
	EndAt       time.Time        `json:"end_at"`
}

func (s *Server) schedulePost(c *gin.Context) {
	var in scheduleInput
	if err := c.ShouldBindJSON(&in); err != nil || in.ScheduledAt.IsZero() {
		c.JSON(400, gin.H{"error": "invalid data"})
		return
	}
	switch in.Recurrence {
	case "", model.RecurDaily, model.RecurWeekly, model.RecurMonthly:
	default:
		c.JSON(400, gin.H{"error": "invalid recurrence"})
		return
	}
	ctx := c.Request.Context()
	p, err := s.DB.GetPost(ctx, c.Param("id"))
	if errors.Is(err, contentdb.ErrNotFound) {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	entry := model.ScheduleEntry{PostID: p.ID, ScheduledAt: in.ScheduledAt.UTC(), Recurrence: in.Recurrence, EndAt: in.EndAt}
	if err := s.DB.SaveSchedule(ctx, entry); err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	p.Status = model.PostStatusScheduled
	if err := s.DB.UpdatePost(ctx, p); err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, entry)
}

type scheduleView struct {
	model.ScheduleEntry
	NextOccurrence time.Time `json:"next_occurrence"`
}

func (s *Server) listSchedule(c *gin.Context) {
	entries, err := s.DB.ListSchedules(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	now := time.Now().UTC()
	out := make([]scheduleView, 0, len(entries))
	for _, e := range entries {
		next := e.ScheduledAt
		if e.Recurrence != "" {
			next = schedule.NextOccurrence(e.ScheduledAt, e.Recurrence, now)
		}
		out = append(out, scheduleView{ScheduleEntry: e, NextOccurrence: next})
	}
	c.JSON(200, gin.H{"schedule": out})
}

func (s *Server) analyticsHours(c *gin.Context) {
	posts, err := s.DB.ListPosts(c.Request.Context(), model.PostStatusPublished)
	if err != nil {
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	buckets := analytics.HourlyPostCounts(posts)
	c.JSON(200, gin.H{"hours": buckets, "best": analytics.BestHours(buckets, 5)})
}
