package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yoockh/careercounsel/internal/api/middleware"
	"github.com/yoockh/careercounsel/internal/models"
	"github.com/yoockh/careercounsel/internal/services"
	"github.com/yoockh/careercounsel/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

// currentUserID is 0 for anonymous callers.
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get(middleware.UserIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func requireUserID(c *gin.Context) (uint, bool) {
	if id := currentUserID(c); id != 0 {
		return id, true
	}
	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
	return 0, false
}

// loadSession fetches the :id session. Sessions bound to a user are only
// visible to that user.
func loadSession(c *gin.Context, sessions services.SessionService) (*models.SessionContext, bool) {
	sess, err := sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	if sess.UserID != 0 && sess.UserID != currentUserID(c) {
		writeError(c, utils.E(utils.CodeForbidden, "Session", "forbidden", nil))
		return nil, false
	}
	return sess, true
}

func bindJSON(c *gin.Context, op string, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			msg := "invalid " + strings.ToLower(fe.Field())
			if fe.Tag() == "required" {
				msg = strings.ToLower(fe.Field()) + " is required"
			}
			writeError(c, utils.E(utils.CodeInvalidArgument, op, msg, err))
			return false
		}
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid json body", err))
		return false
	}
	return true
}

func intQuery(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "Query", key+" must be an integer", err))
		return 0, false
	}
	return n, true
}
