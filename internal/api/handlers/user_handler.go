package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/careercounsel/internal/api/middleware"
	"github.com/yoockh/careercounsel/internal/services"
	"github.com/yoockh/careercounsel/internal/utils"
)

const tokenTTL = 30 * 24 * time.Hour

type UserHandler struct {
	users    services.UserService
	activity services.ActivityRecorder
	secret   string
}

func NewUserHandler(users services.UserService, activity services.ActivityRecorder, secret string) *UserHandler {
	return &UserHandler{users: users, activity: activity, secret: secret}
}

type createUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

func (h *UserHandler) Create(c *gin.Context) {
	const op = "UserHandler.Create"

	var req createUserRequest
	if !bindJSON(c, op, &req) {
		return
	}
	u, err := h.users.Register(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	tok, err := middleware.SignToken(h.secret, u.ID, tokenTTL)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to issue token", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "token": tok})
}

// History returns the caller's stored chat messages, oldest first.
func (h *UserHandler) History(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", 50)
	if !ok {
		return
	}
	rows, err := h.activity.ChatHistory(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": rows})
}
