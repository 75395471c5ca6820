package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/careercounsel/internal/resume"
	"github.com/yoockh/careercounsel/internal/services"
	"github.com/yoockh/careercounsel/internal/utils"
)

type CareerHandler struct {
	careers services.CareerService
	resumes services.ResumeService
}

func NewCareerHandler(careers services.CareerService, resumes services.ResumeService) *CareerHandler {
	return &CareerHandler{careers: careers, resumes: resumes}
}

func (h *CareerHandler) List(c *gin.Context) {
	titles, err := h.careers.Titles(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"titles": titles})
}

func (h *CareerHandler) Get(c *gin.Context) {
	rec, err := h.careers.GetByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Search takes comma separated keywords in q.
func (h *CareerHandler) Search(c *gin.Context) {
	limit, ok := intQuery(c, "limit", 0)
	if !ok {
		return
	}
	var keywords []string
	if q := c.Query("q"); q != "" {
		keywords = strings.Split(q, ",")
	}
	out, err := h.careers.Search(c.Request.Context(), keywords, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"careers": out})
}

func (h *CareerHandler) ResumeKeywords(c *gin.Context) {
	title := c.Param("title")
	c.JSON(http.StatusOK, gin.H{"title": title, "keywords": h.resumes.Keywords(title)})
}

// ResumeReview checks an uploaded resume (multipart field "file") against
// the keywords for the career.
func (h *CareerHandler) ResumeReview(c *gin.Context) {
	const op = "CareerHandler.ResumeReview"

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'file'", err))
		return
	}
	if fh.Size <= 0 || fh.Size > resume.MaxUploadSize {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file too large (max 10MB)", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, resume.MaxUploadSize+1))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to read upload", err))
		return
	}

	rv, err := h.resumes.Review(c.Request.Context(), c.Param("title"), data)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rv)
}
