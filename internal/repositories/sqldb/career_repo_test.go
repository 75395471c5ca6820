package sqldb

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"gorm.io/gorm"

	"github.com/yoockh/careercounsel/config"
	"github.com/yoockh/careercounsel/internal/logger"
	"github.com/yoockh/careercounsel/internal/models"
	"github.com/yoockh/careercounsel/internal/seed"
	"github.com/yoockh/careercounsel/internal/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDatabase(config.Database{Driver: config.DriverSQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newSeededRepo(t *testing.T) (CareerRepository, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	repo := NewCareerRepo(db, logger.Discard())
	if err := repo.Initialize(context.Background(), seed.Embedded); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return repo, db
}

func TestInitializeIsIdempotent(t *testing.T) {
	repo, db := newSeededRepo(t)
	if err := repo.Initialize(context.Background(), seed.Embedded); err != nil {
		t.Fatalf("second initialize: %v", err)
	}
	var careers, fields int64
	db.Model(&models.Career{}).Count(&careers)
	db.Model(&models.CareerField{}).Count(&fields)
	if careers != 21 || fields != 5 {
		t.Fatalf("expected 21 careers in 5 fields, got %d in %d", careers, fields)
	}
}

func TestInitializeRejectsMalformedCatalog(t *testing.T) {
	db := newTestDB(t)
	repo := NewCareerRepo(db, logger.Discard())
	bad := func() ([]seed.Entry, error) {
		return nil, &seed.ValidationError{Line: 2, Column: "roadmap", Reason: "invalid roadmap JSON"}
	}
	err := repo.Initialize(context.Background(), bad)
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
	var ve *seed.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("validation error should stay in the chain: %v", err)
	}
	if db.Migrator().HasTable(&models.Career{}) {
		t.Fatalf("schema must not be created for a malformed catalog")
	}
}

func TestGetByTitleReassemblesTree(t *testing.T) {
	repo, _ := newSeededRepo(t)
	rec, err := repo.GetByTitle(context.Background(), "Data Scientist")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.FieldName != "Technology" || rec.Salary != 120000 || rec.GrowthRate != 0.36 {
		t.Fatalf("unexpected record %+v", rec)
	}
	wantSkills := []string{"Python", "Statistics", "Machine Learning", "SQL", "Data Visualization"}
	if !reflect.DeepEqual(rec.Skills, wantSkills) {
		t.Fatalf("skills=%v want %v", rec.Skills, wantSkills)
	}
	if len(rec.Roadmap) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(rec.Roadmap))
	}
	for i, st := range rec.Roadmap {
		if st.StepOrder != i+1 {
			t.Fatalf("step %d has order %d", i, st.StepOrder)
		}
		if len(st.Resources) == 0 {
			t.Fatalf("step %d has no resources", i+1)
		}
	}
	if last := rec.Roadmap[3].Resources[0]; last.Title != "Kaggle" || !last.IsFree || last.Type != "practice" {
		t.Fatalf("unexpected resource %+v", last)
	}
}

func TestGetByTitleNotFound(t *testing.T) {
	repo, _ := newSeededRepo(t)
	if _, err := repo.GetByTitle(context.Background(), "Nonexistent"); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchRanksByMatchedKeywords(t *testing.T) {
	repo, _ := newSeededRepo(t)
	ctx := context.Background()

	got, err := repo.Search(ctx, []string{"python", "design"}, 2)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if titles := titlesOf(got); !reflect.DeepEqual(titles, []string{"Software Engineer", "Data Scientist"}) {
		t.Fatalf("unexpected ranking %v", titles)
	}
	if len(got[0].Roadmap) == 0 || len(got[0].Skills) == 0 {
		t.Fatalf("search hits must be full records")
	}

	got, err = repo.Search(ctx, []string{"PYTHON"}, 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if titles := titlesOf(got); !reflect.DeepEqual(titles, []string{"Data Scientist", "Software Engineer", "Health Informatics Specialist"}) {
		t.Fatalf("unexpected default-limit result %v", titles)
	}
}

func TestSearchEmptyInputs(t *testing.T) {
	repo, _ := newSeededRepo(t)
	ctx := context.Background()
	for _, kws := range [][]string{nil, {" ", ""}, {"zzzz"}, {"%"}, {"_"}, {"\\"}} {
		got, err := repo.Search(ctx, kws, 5)
		if err != nil {
			t.Fatalf("search %v: %v", kws, err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("search %v: expected empty result, got %v", kws, titlesOf(got))
		}
	}
}

func TestListTitles(t *testing.T) {
	repo, _ := newSeededRepo(t)
	titles, err := repo.ListTitles(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(titles) != 21 || titles[0] != "Software Developer" {
		t.Fatalf("unexpected titles %v", titles)
	}
}

func titlesOf(recs []models.CareerRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}
