package services

import (
	"context"
	"io"

	"github.com/yoockh/careercounsel/internal/models"
)

// CareerActionHandler serves the two actions offered on a career card.
type CareerActionHandler interface {
	// OnViewRoadmap selects title in the session and returns its record.
	OnViewRoadmap(ctx context.Context, sess *models.SessionContext, title string) (*models.CareerRecord, error)
	// OnDownloadPlan streams the plan PDF for title to w.
	OnDownloadPlan(ctx context.Context, sess *models.SessionContext, title string, w io.Writer) error
}

type careerActions struct {
	careers  CareerService
	plans    PlanService
	sessions SessionService
}

func NewCareerActionHandler(careers CareerService, plans PlanService, sessions SessionService) CareerActionHandler {
	return &careerActions{careers: careers, plans: plans, sessions: sessions}
}

func (a *careerActions) OnViewRoadmap(ctx context.Context, sess *models.SessionContext, title string) (*models.CareerRecord, error) {
	rec, err := a.careers.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	sess.SelectedCareer = rec.Title
	sess.CurrentView = models.ViewRoadmap
	if err := a.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return rec, nil
}

func (a *careerActions) OnDownloadPlan(ctx context.Context, sess *models.SessionContext, title string, w io.Writer) error {
	return a.plans.Write(ctx, sess.Profile, title, w)
}
