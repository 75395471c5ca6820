package services

import (
	"context"
	"testing"

	"github.com/yoockh/careercounsel/internal/utils"
)

func TestCareerServiceCachesLookups(t *testing.T) {
	repo := newFakeCareerRepo("Data Scientist")
	svc := NewCareerService(repo, newMemCache(), 0, testLog())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec, err := svc.GetByTitle(ctx, "Data Scientist")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if rec.Title != "Data Scientist" || len(rec.Roadmap) != 1 {
			t.Fatalf("unexpected record %+v", rec)
		}
	}
	if repo.gets != 1 {
		t.Fatalf("expected one repository read, got %d", repo.gets)
	}
}

func TestCareerServiceNotFound(t *testing.T) {
	svc := NewCareerService(newFakeCareerRepo(), nil, 0, testLog())

	_, err := svc.GetByTitle(context.Background(), "Nonexistent Title")
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	want := "Could not find career details for 'Nonexistent Title'. Please select a different career or try again."
	if utils.PublicMessage(err) != want {
		t.Fatalf("unexpected message %q", utils.PublicMessage(err))
	}

	if _, err := svc.GetByTitle(context.Background(), "  "); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("blank title should be INVALID_ARGUMENT, got %v", err)
	}
}

func TestCareerServiceCardsSkipMissing(t *testing.T) {
	svc := NewCareerService(newFakeCareerRepo("UX Designer", "Data Scientist"), nil, 0, testLog())

	cards := svc.Cards(context.Background(), []string{"Data Scientist", "Astronaut", "UX Designer"})
	if len(cards) != 2 || cards[0].Title != "Data Scientist" || cards[1].Title != "UX Designer" {
		t.Fatalf("unexpected cards %+v", cards)
	}
}

func TestActivityRecorderSentinels(t *testing.T) {
	users := newFakeUserRepo()
	users.fail = true
	a := NewActivityRecorder(users, testLog())
	ctx := context.Background()

	if id, ok := a.AddUser(ctx, "Ana", "ana@example.com"); ok || id != 0 {
		t.Fatalf("expected (0,false), got (%d,%v)", id, ok)
	}
	if a.AddUserInterest(ctx, 1, "python") {
		t.Fatalf("expected false on write failure")
	}
	if a.AddChatMessage(ctx, 1, "hi", "user", map[string]any{"intent": "general"}) {
		t.Fatalf("expected false on write failure")
	}

	users.fail = false
	id, ok := a.AddUser(ctx, "Ana", "ana@example.com")
	if !ok || id == 0 {
		t.Fatalf("expected a new id, got (%d,%v)", id, ok)
	}
	if !a.AddChatMessage(ctx, id, "hi", "user", map[string]any{"intent": "general"}) {
		t.Fatalf("expected chat message to be recorded")
	}
	if string(users.chats[0].Metadata) != `{"intent":"general"}` {
		t.Fatalf("unexpected metadata %s", users.chats[0].Metadata)
	}
}
