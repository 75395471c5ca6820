package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/careercounsel/internal/nlp"
	"github.com/yoockh/careercounsel/internal/sentiment"
	"github.com/yoockh/careercounsel/internal/services"
)

// NLPHandler exposes the text analysis steps on their own.
type NLPHandler struct {
	advisor services.AdvisorService
}

func NewNLPHandler(advisor services.AdvisorService) *NLPHandler {
	return &NLPHandler{advisor: advisor}
}

type textRequest struct {
	Text string `json:"text"`
}

type recommendRequest struct {
	Text      string       `json:"text"`
	Keywords  nlp.Keywords `json:"keywords"`
	Sentiment string       `json:"sentiment"`
	Limit     int          `json:"limit"`
}

func (h *NLPHandler) Keywords(c *gin.Context) {
	var req textRequest
	if !bindJSON(c, "NLPHandler.Keywords", &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"keywords": h.advisor.Keywords(req.Text)})
}

func (h *NLPHandler) Intent(c *gin.Context) {
	var req textRequest
	if !bindJSON(c, "NLPHandler.Intent", &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"intent": h.advisor.Intent(req.Text)})
}

func (h *NLPHandler) Sentiment(c *gin.Context) {
	var req textRequest
	if !bindJSON(c, "NLPHandler.Sentiment", &req) {
		return
	}
	c.JSON(http.StatusOK, h.advisor.Sentiment(req.Text))
}

// Recommendations accepts either raw text or pre-extracted keywords.
func (h *NLPHandler) Recommendations(c *gin.Context) {
	var req recommendRequest
	if !bindJSON(c, "NLPHandler.Recommendations", &req) {
		return
	}
	kw := req.Keywords
	if kw == nil {
		kw = h.advisor.Keywords(req.Text)
	}
	sent := sentiment.Parse(req.Sentiment)
	if req.Sentiment == "" && req.Text != "" {
		sent = h.advisor.Sentiment(req.Text).Score.Sentiment
	}
	c.JSON(http.StatusOK, gin.H{"careers": h.advisor.Recommend(kw, sent, req.Limit)})
}
