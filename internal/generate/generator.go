package generate

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"postcraft/internal/llm"
	"postcraft/internal/logging"
	"postcraft/internal/metrics"
	"postcraft/internal/model"
	"postcraft/internal/platform"
	"postcraft/internal/score"
)

// ErrEmptyTopic rejects malformed requests at the boundary instead of
// producing garbled content.
var ErrEmptyTopic = errors.New("topic must not be empty")

var hashtagPattern = regexp.MustCompile(`#\w+`)

// Engagement prediction multipliers per viral-score point.
const (
	likesPerPoint    = 5.2
	retweetsPerPoint = 1.8
	commentsPerPoint = 0.9

	reachFloor = 1000
	reachSpan  = 9000
)

// Generator orchestrates one content-generation request: collaborator call
// under a timeout, hashtag extraction and scoring on success, template
// fallback on any failure. It never surfaces collaborator errors.
type Generator struct {
	llm     llm.Generator
	timeout time.Duration
	pick    Picker
}

// New builds a Generator. gen may be nil, in which case every request takes
// the fallback path.
func New(gen llm.Generator, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Generator{llm: gen, timeout: timeout, pick: RandomPicker()}
}

// WithPicker replaces the selection source; tests use a deterministic stub.
func (g *Generator) WithPicker(p Picker) *Generator {
	g.pick = p
	return g
}

// Generate runs the full pipeline. The only possible error is an empty topic;
// collaborator failure degrades to template content.
func (g *Generator) Generate(ctx context.Context, req model.GenerationRequest) (model.GeneratedContent, error) {
	return g.generate(ctx, req, true)
}

// GenerateOffline skips the collaborator entirely, e.g. when the AI quota for
// the period is exhausted.
func (g *Generator) GenerateOffline(ctx context.Context, req model.GenerationRequest) (model.GeneratedContent, error) {
	return g.generate(ctx, req, false)
}

func (g *Generator) generate(ctx context.Context, req model.GenerationRequest, useAI bool) (model.GeneratedContent, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return model.GeneratedContent{}, ErrEmptyTopic
	}
	start := time.Now()
	metrics.GenerationRuns.Inc()
	defer metrics.ObserveGenerationDuration(start)

	prof := platform.Lookup(req.Platform)
	var content string
	var tags []string
	fellBack := true
	if useAI && g.llm != nil {
		cctx, cancel := context.WithTimeout(ctx, g.timeout)
		text, err := g.llm.GenerateText(cctx, Prompt(req, prof))
		cancel()
		if err == nil && strings.TrimSpace(text) != "" {
			content = strings.TrimSpace(text)
			tags = hashtagPattern.FindAllString(content, -1)
			fellBack = false
		} else if err != nil {
			logging.Warn("generate_fallback", map[string]any{"platform": string(prof.ID), "error": err.Error()})
		}
	}
	if fellBack {
		metrics.GenerationFallbacks.Inc()
		fb := Fallback(req.Topic, req.Tone, req.TargetAudience, req.IncludeHashtags, g.pick)
		content, tags = fb.Content, fb.Hashtags
	}
	sc := score.Score(content, prof.ID)
	return model.GeneratedContent{
		Content:         content,
		ViralScore:      sc,
		Hashtags:        tags,
		Platform:        prof.ID,
		Recommendations: g.recommendations(prof, sc),
		Fallback:        fellBack,
	}, nil
}

func (g *Generator) recommendations(prof platform.Profile, sc int) model.Recommendations {
	return model.Recommendations{
		BestPostTime:  prof.BestPostTime,
		ExpectedReach: reachFloor + g.pick(reachSpan),
		Engagement: model.EngagementPrediction{
			Likes:    int(float64(sc) * likesPerPoint),
			Retweets: int(float64(sc) * retweetsPerPoint),
			Comments: int(float64(sc) * commentsPerPoint),
		},
	}
}

// Prompt builds the collaborator instruction for a request.
func Prompt(req model.GenerationRequest, prof platform.Profile) string {
	tone := req.Tone
	if tone == "" {
		tone = model.ToneProfessional
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s social media post about %q for %s.", tone, req.Topic, prof.ID)
	if req.TargetAudience != "" {
		fmt.Fprintf(&b, " The target audience is %s.", req.TargetAudience)
	}
	fmt.Fprintf(&b, " Keep it under %d characters.", prof.MaxCharacters)
	if req.IncludeHashtags {
		fmt.Fprintf(&b, " Include up to %d relevant hashtags.", prof.OptimalHashtags)
	} else {
		b.WriteString(" Do not include hashtags.")
	}
	b.WriteString(" Return only the post text.")
	return b.String()
}
