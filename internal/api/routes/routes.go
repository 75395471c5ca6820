package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/careercounsel/internal/api/handlers"
	"github.com/yoockh/careercounsel/internal/api/middleware"
)

type Deps struct {
	JWTSecret string

	Careers  *handlers.CareerHandler
	NLP      *handlers.NLPHandler
	Users    *handlers.UserHandler
	Sessions *handlers.SessionHandler
	Chat     *handlers.ChatHandler
	WS       *handlers.WSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/careers", d.Careers.List)
	r.GET("/careers/search", d.Careers.Search)
	r.GET("/careers/:title", d.Careers.Get)
	r.GET("/careers/:title/resume-keywords", d.Careers.ResumeKeywords)
	r.POST("/careers/:title/resume-review", d.Careers.ResumeReview)

	r.POST("/nlp/keywords", d.NLP.Keywords)
	r.POST("/nlp/intent", d.NLP.Intent)
	r.POST("/nlp/sentiment", d.NLP.Sentiment)
	r.POST("/nlp/recommendations", d.NLP.Recommendations)

	r.POST("/users", d.Users.Create)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuth(d.JWTSecret))
	auth.GET("/users/me/history", d.Users.History)
	auth.POST("/sessions/:id/bind", d.Sessions.Bind)

	// Sessions work anonymously; a bound session needs its owner's token.
	sess := r.Group("/")
	sess.Use(middleware.OptionalJWT(d.JWTSecret))
	sess.POST("/sessions", d.Sessions.Start)
	sess.GET("/sessions/:id", d.Sessions.Get)
	sess.POST("/sessions/:id/reset", d.Sessions.Reset)
	sess.POST("/sessions/:id/chat", d.Chat.Chat)
	sess.POST("/sessions/:id/voice", d.Chat.Voice)
	sess.POST("/sessions/:id/roadmap", d.Sessions.ViewRoadmap)
	sess.GET("/sessions/:id/plan", d.Sessions.DownloadPlan)
	sess.POST("/sessions/:id/plan/archive", d.Sessions.ArchivePlan)
	sess.POST("/sessions/:id/quiz", d.Sessions.Quiz)
	sess.GET("/sessions/:id/goals", d.Sessions.ListGoals)
	sess.POST("/sessions/:id/goals", d.Sessions.AddGoal)
	sess.POST("/sessions/:id/goals/:idx/toggle", d.Sessions.ToggleGoal)
	sess.DELETE("/sessions/:id/goals/:idx", d.Sessions.DeleteGoal)

	sess.GET("/ws/sessions/:id/chat", d.WS.ChatWS)
}
