package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/careercounsel/internal/services"
	"github.com/yoockh/careercounsel/internal/utils"
)

const wsReadTimeout = 5 * time.Minute

type WSHandler struct {
	sessions services.SessionService
	advisor  services.AdvisorService
	log      *logrus.Logger
	upgrader websocket.Upgrader
	// wordDelay paces streamed words; zero sends them back to back.
	wordDelay time.Duration
}

func NewWSHandler(sessions services.SessionService, advisor services.AdvisorService, log *logrus.Logger, wordDelay time.Duration) *WSHandler {
	return &WSHandler{
		sessions:  sessions,
		advisor:   advisor,
		log:       log,
		wordDelay: wordDelay,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origin once the web client has a fixed host
		},
	}
}

type wsClientMsg struct {
	Message string `json:"message"`
}

type wsServerMsg struct {
	Type    string              `json:"type"` // token, reply, error
	Text    string              `json:"text,omitempty"`
	Reply   *services.ChatReply `json:"reply,omitempty"`
	Code    utils.Code          `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeJSON(v wsServerMsg) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.c.WriteMessage(websocket.TextMessage, b)
}

func (w *wsConn) writeError(err error) error {
	code := utils.CodeOf(err)
	return w.writeJSON(wsServerMsg{Type: "error", Code: code, Message: utils.PublicMessage(err)})
}

// ChatWS runs chat turns over a websocket. Each reply is streamed word by
// word and then sent whole with its career cards.
func (h *WSHandler) ChatWS(c *gin.Context) {
	sess, ok := loadSession(c, h.sessions)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wc := &wsConn{c: conn}
	ctx := c.Request.Context()
	log := h.log.WithField("session_id", sess.SessionID)

	_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Debug("websocket closed")
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		var msg wsClientMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			if wc.writeError(utils.E(utils.CodeInvalidArgument, "WSHandler.ChatWS", "invalid json", err)) != nil {
				return
			}
			continue
		}

		out, err := h.advisor.Chat(ctx, sess.SessionID, msg.Message)
		if err != nil {
			if wc.writeError(err) != nil {
				return
			}
			continue
		}

		for _, word := range strings.Fields(out.Reply) {
			if err := wc.writeJSON(wsServerMsg{Type: "token", Text: word + " "}); err != nil {
				return
			}
			if h.wordDelay > 0 {
				time.Sleep(h.wordDelay)
			}
		}
		if err := wc.writeJSON(wsServerMsg{Type: "reply", Reply: out}); err != nil {
			return
		}
	}
}
