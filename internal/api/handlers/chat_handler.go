package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/careercounsel/internal/providers/stt"
	"github.com/yoockh/careercounsel/internal/services"
	"github.com/yoockh/careercounsel/internal/utils"
)

const maxAudioSize = 10 << 20

type ChatHandler struct {
	sessions services.SessionService
	advisor  services.AdvisorService
}

func NewChatHandler(sessions services.SessionService, advisor services.AdvisorService) *ChatHandler {
	return &ChatHandler{sessions: sessions, advisor: advisor}
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if !bindJSON(c, "ChatHandler.Chat", &req) {
		return
	}
	if _, ok := loadSession(c, h.sessions); !ok {
		return
	}
	out, err := h.advisor.Chat(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Voice transcribes the multipart "audio" field and runs it as a chat turn.
func (h *ChatHandler) Voice(c *gin.Context) {
	const op = "ChatHandler.Voice"

	if _, ok := loadSession(c, h.sessions); !ok {
		return
	}

	fh, err := c.FormFile("audio")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'audio'", err))
		return
	}
	if fh.Size <= 0 || fh.Size > maxAudioSize {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "audio too large (max 10MB)", nil))
		return
	}
	format, ok := stt.FormatFromContentType(fh.Header.Get("Content-Type"))
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "unsupported audio format", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer f.Close()

	audio, err := io.ReadAll(io.LimitReader(f, maxAudioSize))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to read upload", err))
		return
	}

	out, err := h.advisor.Voice(c.Request.Context(), c.Param("id"), audio, format, c.PostForm("language"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
