package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yoockh/careercounsel/config"
	"github.com/yoockh/careercounsel/internal/api/handlers"
	"github.com/yoockh/careercounsel/internal/logger"
	"github.com/yoockh/careercounsel/internal/repositories/memory"
	"github.com/yoockh/careercounsel/internal/repositories/sqldb"
	"github.com/yoockh/careercounsel/internal/seed"
	"github.com/yoockh/careercounsel/internal/services"
)

const testSecret = "test-secret"

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.Discard()

	db, err := config.OpenDatabase(config.Database{Driver: config.DriverSQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	careerRepo := sqldb.NewCareerRepo(db, log)
	if err := careerRepo.Initialize(context.Background(), seed.Embedded); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	userRepo := sqldb.NewUserRepo(db)

	careers := services.NewCareerService(careerRepo, nil, 0, log)
	activity := services.NewActivityRecorder(userRepo, log)
	sessions := services.NewSessionService(memory.NewSessionRepo(0), userRepo, activity)
	advisor := services.NewAdvisorService(services.AdvisorDeps{
		Sessions: sessions,
		Careers:  careers,
		Activity: activity,
		Log:      log,
	})
	plans := services.NewPlanService(careers, nil, t.TempDir(), log)
	actions := services.NewCareerActionHandler(careers, plans, sessions)
	quiz := services.NewQuizService(sessions, careers, activity)

	r := gin.New()
	RegisterRoutes(r, Deps{
		JWTSecret: testSecret,
		Careers:   handlers.NewCareerHandler(careers, services.NewResumeService()),
		NLP:       handlers.NewNLPHandler(advisor),
		Users:     handlers.NewUserHandler(services.NewUserService(activity), activity, testSecret),
		Sessions:  handlers.NewSessionHandler(sessions, actions, plans, quiz),
		Chat:      handlers.NewChatHandler(sessions, advisor),
		WS:        handlers.NewWSHandler(sessions, advisor, log, 0),
	})
	return r
}

func call(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestCareerRoutes(t *testing.T) {
	r := newRouter(t)

	if w := call(t, r, http.MethodGet, "/ping", "", nil); w.Code != http.StatusOK {
		t.Fatalf("ping: %d", w.Code)
	}

	w := call(t, r, http.MethodGet, "/careers/"+url.PathEscape("Data Scientist"), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get career: %d %s", w.Code, w.Body.String())
	}
	var rec struct {
		Title   string `json:"title"`
		Roadmap []struct {
			StepOrder int `json:"step_order"`
		} `json:"roadmap"`
	}
	decode(t, w, &rec)
	if rec.Title != "Data Scientist" || len(rec.Roadmap) == 0 || rec.Roadmap[0].StepOrder != 1 {
		t.Fatalf("unexpected record %+v", rec)
	}

	w = call(t, r, http.MethodGet, "/careers/"+url.PathEscape("Nonexistent Title"), "", nil)
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "Could not find career details") {
		t.Fatalf("missing career: %d %s", w.Code, w.Body.String())
	}

	w = call(t, r, http.MethodGet, "/careers/search?q=python,design&limit=2", "", nil)
	var found struct {
		Careers []struct {
			Title string `json:"title"`
		} `json:"careers"`
	}
	decode(t, w, &found)
	if len(found.Careers) != 2 || found.Careers[0].Title != "Software Engineer" {
		t.Fatalf("unexpected search result %+v", found)
	}

	w = call(t, r, http.MethodGet, "/careers/"+url.PathEscape("UX Designer")+"/resume-keywords", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "wireframing") {
		t.Fatalf("resume keywords: %d %s", w.Code, w.Body.String())
	}
}

func TestNLPRoutes(t *testing.T) {
	r := newRouter(t)

	w := call(t, r, http.MethodPost, "/nlp/intent", "", map[string]string{"text": "I'm not sure what I want to do"})
	if w.Body.String() != `{"intent":"confused_state"}` {
		t.Fatalf("intent: %s", w.Body.String())
	}

	w = call(t, r, http.MethodPost, "/nlp/recommendations", "", map[string]any{"text": "nursing and patient care", "limit": 2})
	var out struct {
		Careers []string `json:"careers"`
	}
	decode(t, w, &out)
	if len(out.Careers) != 2 || out.Careers[0] != "Healthcare Administrator" {
		t.Fatalf("recommendations: %+v", out)
	}

	if w := call(t, r, http.MethodPost, "/nlp/sentiment", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("empty body should be 400, got %d", w.Code)
	}
}

func TestAnonymousSessionFlow(t *testing.T) {
	r := newRouter(t)

	w := call(t, r, http.MethodPost, "/sessions", "", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("start: %d %s", w.Code, w.Body.String())
	}
	var sess struct {
		SessionID string `json:"session_id"`
	}
	decode(t, w, &sess)
	base := "/sessions/" + sess.SessionID

	w = call(t, r, http.MethodPost, base+"/chat", "", map[string]string{"message": "I love python and javascript"})
	var reply struct {
		Reply     string   `json:"reply"`
		Intent    string   `json:"intent"`
		Suggested []string `json:"suggested_careers"`
		Cards     []any    `json:"cards"`
	}
	decode(t, w, &reply)
	if reply.Intent != "tech_interest" || reply.Reply == "" || len(reply.Suggested) != 3 || len(reply.Cards) != 3 {
		t.Fatalf("chat: %+v", reply)
	}

	w = call(t, r, http.MethodGet, base+"/plan?title="+url.QueryEscape("Data Scientist"), "", nil)
	if w.Code != http.StatusOK || !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("plan: %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Data_Scientist_career_plan.pdf") {
		t.Fatalf("unexpected content disposition %q", cd)
	}

	w = call(t, r, http.MethodGet, base+"/plan?title=Astronaut", "", nil)
	if w.Code != http.StatusNotFound || w.Header().Get("Content-Disposition") != "" {
		t.Fatalf("missing plan: %d %v", w.Code, w.Header())
	}

	w = call(t, r, http.MethodPost, base+"/goals", "", map[string]string{"title": "Learn SQL", "deadline": "2026-12-01"})
	if w.Code != http.StatusCreated {
		t.Fatalf("add goal: %d %s", w.Code, w.Body.String())
	}
	if w := call(t, r, http.MethodPost, base+"/goals/0/toggle", "", nil); w.Code != http.StatusOK {
		t.Fatalf("toggle goal: %d", w.Code)
	}
	w = call(t, r, http.MethodGet, base+"/goals?filter=completed", "", nil)
	if !strings.Contains(w.Body.String(), `"title":"Learn SQL"`) || !strings.Contains(w.Body.String(), `"completed":true`) {
		t.Fatalf("completed goals: %s", w.Body.String())
	}

	w = call(t, r, http.MethodPost, base+"/reset", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"goals":[]`) || !strings.Contains(w.Body.String(), `"messages":[]`) {
		t.Fatalf("reset: %d %s", w.Code, w.Body.String())
	}
}

func TestBoundSessionRequiresOwner(t *testing.T) {
	r := newRouter(t)

	w := call(t, r, http.MethodPost, "/users", "", map[string]string{"name": "Ana", "email": "ana@example.com"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create user: %d %s", w.Code, w.Body.String())
	}
	var created struct {
		Token string `json:"token"`
	}
	decode(t, w, &created)

	w = call(t, r, http.MethodPost, "/sessions", created.Token, nil)
	var sess struct {
		SessionID string `json:"session_id"`
		UserID    uint   `json:"user_id"`
	}
	decode(t, w, &sess)
	if sess.UserID == 0 {
		t.Fatalf("session should be bound to the token's user")
	}
	base := "/sessions/" + sess.SessionID

	if w := call(t, r, http.MethodGet, base, "", nil); w.Code != http.StatusForbidden {
		t.Fatalf("anonymous access to bound session should be 403, got %d", w.Code)
	}
	if w := call(t, r, http.MethodPost, base+"/chat", created.Token, map[string]string{"message": "I want to become a teacher"}); w.Code != http.StatusOK {
		t.Fatalf("owner chat: %d %s", w.Code, w.Body.String())
	}

	w = call(t, r, http.MethodGet, "/users/me/history", created.Token, nil)
	var hist struct {
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
	}
	decode(t, w, &hist)
	if len(hist.Messages) != 2 || hist.Messages[0].Role != "user" || hist.Messages[1].Role != "assistant" {
		t.Fatalf("history: %s", w.Body.String())
	}

	if w := call(t, r, http.MethodGet, "/users/me/history", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("history without token should be 401, got %d", w.Code)
	}
}

func TestChatWebsocketStreamsReply(t *testing.T) {
	r := newRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	w := call(t, r, http.MethodPost, "/sessions", "", nil)
	var sess struct {
		SessionID string `json:"session_id"`
	}
	decode(t, w, &sess)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/sessions/" + sess.SessionID + "/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(map[string]string{"message": "I enjoy graphic design"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var streamed strings.Builder
	for {
		var msg struct {
			Type  string `json:"type"`
			Text  string `json:"text"`
			Reply *struct {
				Reply string `json:"reply"`
			} `json:"reply"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if msg.Type == "token" {
			streamed.WriteString(msg.Text)
			continue
		}
		if msg.Type != "reply" || msg.Reply == nil {
			t.Fatalf("unexpected frame %+v", msg)
		}
		if strings.TrimSpace(streamed.String()) != strings.Join(strings.Fields(msg.Reply.Reply), " ") {
			t.Fatalf("streamed %q, final %q", streamed.String(), msg.Reply.Reply)
		}
		return
	}
}

func TestCreateUserValidatesBody(t *testing.T) {
	r := newRouter(t)

	cases := []struct {
		body map[string]string
		want string
	}{
		{map[string]string{"name": "Ana", "email": "not-an-email"}, "invalid email"},
		{map[string]string{"email": "ana@example.com"}, "name is required"},
	}
	for _, tc := range cases {
		w := call(t, r, http.MethodPost, "/users", "", tc.body)
		if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), tc.want) {
			t.Fatalf("%v: %d %s", tc.body, w.Code, w.Body.String())
		}
	}
	if w := call(t, r, http.MethodPost, "/users", "", map[string]string{"name": "Ana"}); w.Code != http.StatusCreated {
		t.Fatalf("email should be optional: %d %s", w.Code, w.Body.String())
	}
}
