package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/careercounsel/internal/cache"
	"github.com/yoockh/careercounsel/internal/models"
	"github.com/yoockh/careercounsel/internal/repositories/sqldb"
	"github.com/yoockh/careercounsel/internal/utils"
)

type CareerService interface {
	GetByTitle(ctx context.Context, title string) (*models.CareerRecord, error)
	Search(ctx context.Context, keywords []string, limit int) ([]models.CareerRecord, error)
	Titles(ctx context.Context) ([]string, error)
	// Cards looks up each title and skips the ones that are not in the catalog.
	Cards(ctx context.Context, titles []string) []models.CareerRecord
}

type careerService struct {
	repo  sqldb.CareerRepository
	cache cache.Cache // optional
	ttl   time.Duration
	log   *logrus.Logger
}

func NewCareerService(repo sqldb.CareerRepository, c cache.Cache, ttl time.Duration, log *logrus.Logger) CareerService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &careerService{repo: repo, cache: c, ttl: ttl, log: log}
}

// CareerNotFoundMessage is shown when a selected career has no record.
func CareerNotFoundMessage(title string) string {
	return fmt.Sprintf("Could not find career details for '%s'. Please select a different career or try again.", title)
}

func (s *careerService) GetByTitle(ctx context.Context, title string) (*models.CareerRecord, error) {
	const op = "CareerService.GetByTitle"

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title is required", nil)
	}

	key := cache.CareerKey(title)
	if s.cache != nil {
		var rec models.CareerRecord
		hit, err := s.cache.GetJSON(ctx, key, &rec)
		if err != nil {
			s.log.WithError(err).WithField("key", key).Warn("career cache read failed")
		}
		if hit {
			return &rec, nil
		}
	}

	rec, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, CareerNotFoundMessage(title), err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get career", err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, rec, s.ttl); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("career cache write failed")
		}
	}
	return rec, nil
}

func (s *careerService) Search(ctx context.Context, keywords []string, limit int) ([]models.CareerRecord, error) {
	const op = "CareerService.Search"

	cleaned := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			cleaned = append(cleaned, k)
		}
	}
	out, err := s.repo.Search(ctx, cleaned, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to search careers", err)
	}
	return out, nil
}

func (s *careerService) Titles(ctx context.Context) ([]string, error) {
	const op = "CareerService.Titles"

	if s.cache != nil {
		var titles []string
		if hit, _ := s.cache.GetJSON(ctx, cache.CareerTitlesKey, &titles); hit {
			return titles, nil
		}
	}
	titles, err := s.repo.ListTitles(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list careers", err)
	}
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cache.CareerTitlesKey, titles, s.ttl); err != nil {
			s.log.WithError(err).Warn("career cache write failed")
		}
	}
	return titles, nil
}

func (s *careerService) Cards(ctx context.Context, titles []string) []models.CareerRecord {
	cards := make([]models.CareerRecord, 0, len(titles))
	for _, t := range titles {
		rec, err := s.GetByTitle(ctx, t)
		if err != nil {
			if !utils.IsCode(err, utils.CodeNotFound) {
				s.log.WithError(err).WithField("title", t).Warn("career card lookup failed")
			}
			continue
		}
		cards = append(cards, *rec)
	}
	return cards
}
