package services

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/careercounsel/internal/export"
	"github.com/yoockh/careercounsel/internal/models"
	"github.com/yoockh/careercounsel/internal/storage"
	"github.com/yoockh/careercounsel/internal/utils"
)

const planLinkTTL = 15 * time.Minute

// PlanFilename is the download name of a plan, e.g. Data_Scientist_career_plan.pdf.
func PlanFilename(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(title), " ", "_") + "_career_plan.pdf"
}

type ArchivedPlan struct {
	Object    string    `json:"object"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type PlanService interface {
	// Write renders the plan for title and copies it to w. Nothing is
	// written when the career cannot be found or rendering fails.
	Write(ctx context.Context, profile models.UserProfile, title string, w io.Writer) error
	Archive(ctx context.Context, sessionID string, profile models.UserProfile, title string) (*ArchivedPlan, error)
}

type planService struct {
	careers CareerService
	archive storage.Archive // optional
	tmpDir  string
	log     *logrus.Logger
}

func NewPlanService(careers CareerService, archive storage.Archive, tmpDir string, log *logrus.Logger) PlanService {
	return &planService{careers: careers, archive: archive, tmpDir: tmpDir, log: log}
}

// render returns an artifact the caller must release.
func (s *planService) render(ctx context.Context, op string, profile models.UserProfile, title string) (*export.Artifact, error) {
	rec, err := s.careers.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	art, err := export.RenderPDF(export.BuildPlan(rec, profile, time.Now()), s.tmpDir)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to render career plan", err)
	}
	return art, nil
}

func (s *planService) release(art *export.Artifact) {
	if err := art.Release(); err != nil {
		s.log.WithError(err).WithField("path", art.Path()).Warn("failed to remove plan file")
	}
}

func (s *planService) Write(ctx context.Context, profile models.UserProfile, title string, w io.Writer) error {
	const op = "PlanService.Write"

	art, err := s.render(ctx, op, profile, title)
	if err != nil {
		return err
	}
	defer s.release(art)

	f, err := art.Open()
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to open career plan", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to send career plan", err)
	}
	return nil
}

func (s *planService) Archive(ctx context.Context, sessionID string, profile models.UserProfile, title string) (*ArchivedPlan, error) {
	const op = "PlanService.Archive"

	if s.archive == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "plan archive is not configured", nil)
	}

	var buf bytes.Buffer
	if err := s.Write(ctx, profile, title, &buf); err != nil {
		return nil, err
	}

	object := storage.PlanObjectName(sessionID, PlanFilename(title))
	if _, err := s.archive.Upload(ctx, object, "application/pdf", &buf); err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload career plan", err)
	}
	url, err := s.archive.SignedGetURL(ctx, object, planLinkTTL)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to sign plan link", err)
	}
	return &ArchivedPlan{Object: object, URL: url, ExpiresAt: time.Now().UTC().Add(planLinkTTL)}, nil
}
