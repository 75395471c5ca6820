package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/careercounsel/internal/services"
	"github.com/yoockh/careercounsel/internal/utils"
)

type SessionHandler struct {
	sessions services.SessionService
	actions  services.CareerActionHandler
	plans    services.PlanService
	quiz     services.QuizService
}

func NewSessionHandler(sessions services.SessionService, actions services.CareerActionHandler, plans services.PlanService, quiz services.QuizService) *SessionHandler {
	return &SessionHandler{sessions: sessions, actions: actions, plans: plans, quiz: quiz}
}

func (h *SessionHandler) Start(c *gin.Context) {
	sess, err := h.sessions.Start(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

func (h *SessionHandler) Get(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *SessionHandler) Reset(c *gin.Context) {
	if _, ok := loadSession(c, h.sessions); !ok {
		return
	}
	sess, err := h.sessions.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Bind attaches an anonymous session to the authenticated user.
func (h *SessionHandler) Bind(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sess, err := h.sessions.Bind(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

type titleRequest struct {
	Title string `json:"title"`
}

func (h *SessionHandler) ViewRoadmap(c *gin.Context) {
	var req titleRequest
	if !bindJSON(c, "SessionHandler.ViewRoadmap", &req) {
		return
	}
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}
	rec, err := h.actions.OnViewRoadmap(c.Request.Context(), sess, req.Title)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// attachment sets the download headers on the first write, so errors
// raised before any byte is produced can still be sent as JSON.
type attachment struct {
	c       *gin.Context
	name    string
	started bool
}

func (a *attachment) Write(p []byte) (int, error) {
	if !a.started {
		a.started = true
		a.c.Header("Content-Type", "application/pdf")
		a.c.Header("Content-Disposition", `attachment; filename="`+a.name+`"`)
		a.c.Status(http.StatusOK)
	}
	return a.c.Writer.Write(p)
}

func (h *SessionHandler) DownloadPlan(c *gin.Context) {
	const op = "SessionHandler.DownloadPlan"

	title := c.Query("title")
	if title == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "title is required", nil))
		return
	}
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	w := &attachment{c: c, name: services.PlanFilename(title)}
	if err := h.actions.OnDownloadPlan(c.Request.Context(), sess, title, w); err != nil {
		if w.started {
			_ = c.Error(err)
			c.Abort()
			return
		}
		writeError(c, err)
	}
}

// ArchivePlan stores the plan in the bucket and returns a signed link.
func (h *SessionHandler) ArchivePlan(c *gin.Context) {
	var req titleRequest
	if !bindJSON(c, "SessionHandler.ArchivePlan", &req) {
		return
	}
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}
	out, err := h.plans.Archive(c.Request.Context(), sess.SessionID, sess.Profile, req.Title)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SessionHandler) Quiz(c *gin.Context) {
	var req services.QuizAnswers
	if !bindJSON(c, "SessionHandler.Quiz", &req) {
		return
	}
	if _, ok := loadSession(c, h.sessions); !ok {
		return
	}
	out, err := h.quiz.Submit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SessionHandler) ListGoals(c *gin.Context) {
	if _, ok := loadSession(c, h.sessions); !ok {
		return
	}
	goals, err := h.sessions.ListGoals(c.Request.Context(), c.Param("id"), c.Query("filter"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

func (h *SessionHandler) AddGoal(c *gin.Context) {
	var req services.GoalInput
	if !bindJSON(c, "SessionHandler.AddGoal", &req) {
		return
	}
	if _, ok := loadSession(c, h.sessions); !ok {
		return
	}
	g, err := h.sessions.AddGoal(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

func goalIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "Goal", "goal index must be an integer", err))
		return 0, false
	}
	return idx, true
}

func (h *SessionHandler) ToggleGoal(c *gin.Context) {
	idx, ok := goalIndex(c)
	if !ok {
		return
	}
	if _, ok := loadSession(c, h.sessions); !ok {
		return
	}
	g, err := h.sessions.ToggleGoal(c.Request.Context(), c.Param("id"), idx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *SessionHandler) DeleteGoal(c *gin.Context) {
	idx, ok := goalIndex(c)
	if !ok {
		return
	}
	if _, ok := loadSession(c, h.sessions); !ok {
		return
	}
	if err := h.sessions.DeleteGoal(c.Request.Context(), c.Param("id"), idx); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
