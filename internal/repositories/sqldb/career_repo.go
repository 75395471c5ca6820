package sqldb

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yoockh/careercounsel/internal/models"
	"github.com/yoockh/careercounsel/internal/seed"
	"github.com/yoockh/careercounsel/internal/utils"
)

const defaultSearchLimit = 3

type CareerRepository interface {
	Initialize(ctx context.Context, load seed.Loader) error
	GetByTitle(ctx context.Context, title string) (*models.CareerRecord, error)
	Search(ctx context.Context, keywords []string, limit int) ([]models.CareerRecord, error)
	ListTitles(ctx context.Context) ([]string, error)
}

type careerRepo struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewCareerRepo(db *gorm.DB, log *logrus.Logger) CareerRepository {
	return &careerRepo{db: db, log: log}
}

// Initialize creates the schema and loads the seed catalog, both in one
// transaction, unless the careers table already exists.
func (r *careerRepo) Initialize(ctx context.Context, load seed.Loader) error {
	const op = "CareerRepo.Initialize"

	db := r.db.WithContext(ctx)
	if db.Migrator().HasTable(&models.Career{}) {
		r.log.Info("database already initialized")
		return nil
	}

	entries, err := load()
	if err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "invalid seed catalog", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(Models()...); err != nil {
			return err
		}
		return insertCatalog(tx, entries)
	})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to initialize database", err)
	}

	r.log.WithField("careers", len(entries)).Info("sample data loaded")
	return nil
}

func insertCatalog(tx *gorm.DB, entries []seed.Entry) error {
	fields := map[string]uint{}
	for _, e := range entries {
		fieldID, ok := fields[e.Field]
		if !ok {
			f := models.CareerField{Name: e.Field, Description: "Career field related to " + e.Field}
			if err := tx.Create(&f).Error; err != nil {
				return err
			}
			fieldID = f.ID
			fields[e.Field] = fieldID
		}

		c := models.Career{
			FieldID:        fieldID,
			Title:          e.Title,
			Description:    e.Description,
			Salary:         e.Salary,
			GrowthRate:     e.GrowthRate,
			EducationLevel: e.EducationLevel,
		}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}

		if len(e.Skills) > 0 {
			skills := make([]models.CareerSkill, len(e.Skills))
			for i, s := range e.Skills {
				skills[i] = models.CareerSkill{CareerID: c.ID, Skill: s, Importance: 10 - i}
			}
			if err := tx.Create(&skills).Error; err != nil {
				return err
			}
		}

		for i, st := range e.Roadmap {
			step := models.RoadmapStep{
				CareerID:    c.ID,
				StepOrder:   i + 1,
				Title:       st.Title,
				Description: st.Description,
				Duration:    st.Duration,
			}
			if err := tx.Create(&step).Error; err != nil {
				return err
			}
			if len(st.Resources) == 0 {
				continue
			}
			res := make([]models.LearningResource, len(st.Resources))
			for j, rs := range st.Resources {
				res[j] = models.LearningResource{StepID: step.ID, Title: rs.Title, URL: rs.URL, Type: rs.Type, IsFree: rs.IsFree}
			}
			if err := tx.Create(&res).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

type careerRow struct {
	ID             uint
	FieldID        uint
	FieldName      string
	Title          string
	Description    string
	Salary         int64
	GrowthRate     float64
	EducationLevel string
}

func (r *careerRepo) GetByTitle(ctx context.Context, title string) (*models.CareerRecord, error) {
	db := r.db.WithContext(ctx)

	var row careerRow
	err := db.Table("careers AS c").
		Select("c.id, c.field_id, cf.name AS field_name, c.title, c.description, c.salary, c.growth_rate, c.education_level").
		Joins("JOIN career_fields cf ON cf.id = c.field_id").
		Where("c.title = ?", title).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rec := &models.CareerRecord{
		ID:             row.ID,
		Title:          row.Title,
		FieldID:        row.FieldID,
		FieldName:      row.FieldName,
		Description:    row.Description,
		Salary:         row.Salary,
		GrowthRate:     row.GrowthRate,
		EducationLevel: row.EducationLevel,
		Skills:         []string{},
		Roadmap:        []models.RoadmapStep{},
	}

	if err := db.Model(&models.CareerSkill{}).
		Where("career_id = ?", row.ID).
		Order("importance DESC, id ASC").
		Pluck("skill", &rec.Skills).Error; err != nil {
		return nil, err
	}

	err = db.Where("career_id = ?", row.ID).
		Order("step_order ASC").
		Preload("Resources", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Find(&rec.Roadmap).Error
	if err != nil {
		return nil, err
	}
	for i := range rec.Roadmap {
		if rec.Roadmap[i].Resources == nil {
			rec.Roadmap[i].Resources = []models.LearningResource{}
		}
	}
	return rec, nil
}

const keywordClause = "(LOWER(c.title) LIKE ? ESCAPE '\\' OR LOWER(c.description) LIKE ? ESCAPE '\\' " +
	"OR LOWER(cf.name) LIKE ? ESCAPE '\\' " +
	"OR EXISTS (SELECT 1 FROM career_skills cs WHERE cs.career_id = c.id AND LOWER(cs.skill) LIKE ? ESCAPE '\\'))"

// likeEscaper makes LIKE wildcards in a keyword match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type searchHit struct {
	ID        uint
	Title     string
	Relevance int
}

// Search ranks careers by how many keywords they match in title,
// description, field name or skills. Blank keywords are ignored.
func (r *careerRepo) Search(ctx context.Context, keywords []string, limit int) ([]models.CareerRecord, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var patterns []string
	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			patterns = append(patterns, "%"+likeEscaper.Replace(kw)+"%")
		}
	}
	if len(patterns) == 0 {
		return []models.CareerRecord{}, nil
	}

	scores := make([]string, len(patterns))
	matches := make([]string, len(patterns))
	var clauseArgs []any
	for i, p := range patterns {
		scores[i] = "(CASE WHEN " + keywordClause + " THEN 1 ELSE 0 END)"
		matches[i] = keywordClause
		clauseArgs = append(clauseArgs, p, p, p, p)
	}

	query := "SELECT c.id, c.title, (" + strings.Join(scores, " + ") + ") AS relevance " +
		"FROM careers c JOIN career_fields cf ON cf.id = c.field_id " +
		"WHERE " + strings.Join(matches, " OR ") + " " +
		"ORDER BY relevance DESC, c.id ASC LIMIT ?"

	args := make([]any, 0, 2*len(clauseArgs)+1)
	args = append(args, clauseArgs...)
	args = append(args, clauseArgs...)
	args = append(args, limit)

	var hits []searchHit
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&hits).Error; err != nil {
		return nil, err
	}

	out := make([]models.CareerRecord, 0, len(hits))
	for _, h := range hits {
		rec, err := r.GetByTitle(ctx, h.Title)
		if errors.Is(err, utils.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (r *careerRepo) ListTitles(ctx context.Context) ([]string, error) {
	titles := []string{}
	err := r.db.WithContext(ctx).Model(&models.Career{}).Order("id ASC").Pluck("title", &titles).Error
	return titles, err
}
