package api

import (
	"github.com/gin-gonic/gin"

	"postcraft/internal/config"
	"postcraft/internal/generate"
	"postcraft/internal/store/contentdb"
)

// Server bundles the dependencies behind the HTTP API.
type Server struct {
	DB    *contentdb.DB
	Gen   *generate.Generator
	Quota config.QuotaConfig
}

// NewRouter wires all routes onto a gin engine.
func NewRouter(s *Server) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	content := r.Group("/content")
	content.POST("/generate", s.generateContent)
	content.GET("/rank", s.rankContent)

	r.GET("/platforms", s.listPlatforms)
	r.GET("/platforms/:id", s.getPlatform)
	r.GET("/platforms/:id/cta", s.platformCTA)
	r.GET("/hashtags", s.suggestHashtags)

	posts := r.Group("/posts")
	posts.POST("", s.createPost)
	posts.GET("", s.listPosts)
	posts.GET("/:id", s.getPost)
	posts.PUT("/:id", s.updatePost)
	posts.DELETE("/:id", s.deletePost)
	posts.POST("/:id/schedule", s.schedulePost)

	r.GET("/schedule", s.listSchedule)
	r.GET("/analytics/hours", s.analyticsHours)

	return r
}
