package services

import (
	"context"

	"github.com/yoockh/careercounsel/internal/models"
	"github.com/yoockh/careercounsel/internal/utils"
)

const (
	SkillTechnical = "technical"
	SkillCreative  = "creative"
	SkillPeople    = "people"
)

var quizCareers = map[string][]string{
	SkillTechnical: {"Data Scientist", "Software Engineer", "Systems Analyst"},
	SkillCreative:  {"UX Designer", "Content Creator", "Digital Marketing Specialist"},
	SkillPeople:    {"Human Resources Manager", "Sales Executive", "Customer Success Manager"},
}

// QuizAnswers are self-ratings from 1 to 10. The last three are optional.
type QuizAnswers struct {
	Technical      int `json:"technical"`
	Creative       int `json:"creative"`
	People         int `json:"people"`
	Analytical     int `json:"analytical"`
	Leadership     int `json:"leadership"`
	DetailOriented int `json:"detail_oriented"`
}

type QuizResult struct {
	TopSkill string                `json:"top_skill"`
	Careers  []string              `json:"careers"`
	Cards    []models.CareerRecord `json:"cards"`
}

type QuizService interface {
	Submit(ctx context.Context, sessionID string, a QuizAnswers) (*QuizResult, error)
}

type quizService struct {
	sessions SessionService
	careers  CareerService
	activity ActivityRecorder // optional
}

func NewQuizService(sessions SessionService, careers CareerService, activity ActivityRecorder) QuizService {
	return &quizService{sessions: sessions, careers: careers, activity: activity}
}

// TopSkill picks the highest score; ties go to technical, then creative.
func TopSkill(a QuizAnswers) string {
	top, best := SkillTechnical, a.Technical
	if a.Creative > best {
		top, best = SkillCreative, a.Creative
	}
	if a.People > best {
		top = SkillPeople
	}
	return top
}

func (s *quizService) Submit(ctx context.Context, sessionID string, a QuizAnswers) (*QuizResult, error) {
	const op = "QuizService.Submit"

	for _, v := range []int{a.Technical, a.Creative, a.People} {
		if v < 1 || v > 10 {
			return nil, utils.E(utils.CodeInvalidArgument, op, "technical, creative and people must be between 1 and 10", nil)
		}
	}
	for _, v := range []int{a.Analytical, a.Leadership, a.DetailOriented} {
		if v < 0 || v > 10 {
			return nil, utils.E(utils.CodeInvalidArgument, op, "optional scores must be between 0 and 10", nil)
		}
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	top := TopSkill(a)
	careers := append([]string{}, quizCareers[top]...)
	sess.Profile.SuggestedCareers = careers
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	if sess.UserID != 0 && s.activity != nil {
		s.activity.AddPersonalityResult(ctx, models.PersonalityResult{
			UserID:              sess.UserID,
			TechnicalScore:      a.Technical,
			CreativeScore:       a.Creative,
			PeopleScore:         a.People,
			AnalyticalScore:     a.Analytical,
			LeadershipScore:     a.Leadership,
			DetailOrientedScore: a.DetailOriented,
		})
	}

	return &QuizResult{
		TopSkill: top,
		Careers:  careers,
		Cards:    s.careers.Cards(ctx, careers),
	}, nil
}
