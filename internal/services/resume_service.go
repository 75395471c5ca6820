package services

import (
	"context"
	"strings"

	"github.com/yoockh/careercounsel/internal/resume"
	"github.com/yoockh/careercounsel/internal/utils"
)

type ResumeService interface {
	Keywords(title string) []string
	Review(ctx context.Context, title string, data []byte) (*resume.Review, error)
}

type resumeService struct{}

func NewResumeService() ResumeService { return resumeService{} }

func (resumeService) Keywords(title string) []string {
	return resume.SuggestedKeywords(title)
}

func (resumeService) Review(_ context.Context, title string, data []byte) (*resume.Review, error) {
	const op = "ResumeService.Review"

	if strings.TrimSpace(title) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "target career is required", nil)
	}
	if len(data) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "resume file is empty", nil)
	}
	if len(data) > resume.MaxUploadSize {
		return nil, utils.E(utils.CodeInvalidArgument, op, "file too large (max 10MB)", nil)
	}
	text, err := resume.ExtractText(data)
	if err != nil {
		return nil, err
	}
	rv := resume.ReviewText(title, text)
	return &rv, nil
}
