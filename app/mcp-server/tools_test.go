package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/yoockh/careercounsel/config"
	"github.com/yoockh/careercounsel/internal/logger"
	"github.com/yoockh/careercounsel/internal/repositories/memory"
	"github.com/yoockh/careercounsel/internal/repositories/sqldb"
	"github.com/yoockh/careercounsel/internal/seed"
	"github.com/yoockh/careercounsel/internal/services"
)

func newToolset(t *testing.T) *toolset {
	t.Helper()
	l := logger.Discard()
	db, err := config.OpenDatabase(config.Database{Driver: config.DriverSQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	repo := sqldb.NewCareerRepo(db, l)
	if err := repo.Initialize(context.Background(), seed.Embedded); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	careers := services.NewCareerService(repo, nil, 0, l)
	return &toolset{
		careers: careers,
		advisor: services.NewAdvisorService(services.AdvisorDeps{
			Sessions: services.NewSessionService(memory.NewSessionRepo(0), nil, nil),
			Careers:  careers,
			Log:      l,
		}),
	}
}

func request(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func TestGetCareerTool(t *testing.T) {
	ts := newToolset(t)
	ctx := context.Background()

	res, err := ts.getCareer(ctx, request(map[string]interface{}{"title": "Data Scientist"}))
	if err != nil || res.IsError {
		t.Fatalf("get_career: %v %+v", err, res)
	}
	var rec struct {
		Title  string   `json:"title"`
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Title != "Data Scientist" || len(rec.Skills) == 0 || rec.Skills[0] != "Python" {
		t.Fatalf("unexpected record %+v", rec)
	}

	res, _ = ts.getCareer(ctx, request(map[string]interface{}{"title": "Nonexistent Title"}))
	if !res.IsError || !strings.Contains(resultText(t, res), "Could not find career details") {
		t.Fatalf("expected not found error, got %+v", res)
	}
}

func TestSearchCareersTool(t *testing.T) {
	ts := newToolset(t)
	res, err := ts.searchCareers(context.Background(), request(map[string]interface{}{
		"keywords": []interface{}{"python"},
		"limit":    float64(5),
	}))
	if err != nil || res.IsError {
		t.Fatalf("search_careers: %v %+v", err, res)
	}
	var out []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) == 0 || out[0].Title != "Data Scientist" {
		t.Fatalf("unexpected results %+v", out)
	}
}

func TestTextTools(t *testing.T) {
	ts := newToolset(t)
	ctx := context.Background()

	res, _ := ts.detectIntent(ctx, request(map[string]interface{}{"text": "I'm not sure what I want to do"}))
	if got := resultText(t, res); got != "confused_state" {
		t.Fatalf("detect_intent = %q", got)
	}

	res, _ = ts.recommendCareers(ctx, request(map[string]interface{}{"text": "I like teaching", "limit": float64(1)}))
	var titles []string
	if err := json.Unmarshal([]byte(resultText(t, res)), &titles); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(titles) != 1 || titles[0] != "Instructional Designer" {
		t.Fatalf("recommend_careers = %v", titles)
	}

	res, _ = ts.extractKeywords(ctx, request(map[string]interface{}{}))
	if !res.IsError {
		t.Fatalf("missing text should be a tool error")
	}
}
